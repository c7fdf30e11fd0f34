// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// SampleScale is the magnitude of full scale for a signed sample of the
// given width, e.g. 32768 for 16 bits.
func SampleScale(bits int) float32 {
	if bits <= 0 || bits > 32 {
		return 1
	}
	return float32(uint64(1) << (bits - 1))
}

// Sample decodes one integer sample of size bytes from b. Unsigned samples
// are re-centred around zero.
func Sample(b []byte, size int, bigEndian, signed bool) int {
	var u uint32
	for i := range size {
		shift := 8 * i
		if bigEndian {
			shift = 8 * (size - 1 - i)
		}
		u |= uint32(b[i]) << shift
	}

	bits := 8 * size
	if !signed {
		return int(int64(u) - int64(1)<<(bits-1))
	}

	// sign extend
	if bits < 32 && u&(1<<(bits-1)) != 0 {
		u |= ^uint32(0) << bits
	}
	return int(int32(u))
}

// PutSample encodes v as a signed sample of size bytes into b.
func PutSample(b []byte, v int, size int, bigEndian bool) {
	u := uint32(int32(v))
	for i := range size {
		shift := 8 * i
		if bigEndian {
			shift = 8 * (size - 1 - i)
		}
		b[i] = byte(u >> shift)
	}
}
