// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/utils"
)

// chunkFrames is how many frames Encode moves per write.
const chunkFrames = 4096

// Encode drains s into a WAV file written to w and returns the number of
// frames written. The header is patched on completion, hence io.WriteSeeker.
// Integer PCM of 8 to 32 bits in either byte order is accepted.
func Encode(w io.WriteSeeker, s *audio.FrameStream) (int64, error) {
	f := s.Format()
	if f.Encoding != audio.PCMSigned && f.Encoding != audio.PCMUnsigned {
		return 0, fmt.Errorf("%s: %w", f.Encoding, ErrUnsupportedEncoding)
	}

	size := f.BytesPerSample()
	if size < 1 || size > 4 || f.Channels < 1 || size*f.Channels != s.FrameSize() {
		return 0, fmt.Errorf("%s: %w", f, ErrUnsupportedEncoding)
	}

	bits := 8 * size
	enc := wav.NewEncoder(w, int(f.SampleRate), bits, f.Channels, formatPCM)

	raw := make([]byte, chunkFrames*s.FrameSize())
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: int(f.SampleRate)},
		Data:           make([]int, chunkFrames*f.Channels),
		SourceBitDepth: bits,
	}

	signed := f.Encoding == audio.PCMSigned
	var frames int64
	for {
		n, err := s.Read(raw)
		if n > 0 {
			samples := n / size
			for i := range samples {
				v := utils.Sample(raw[i*size:], size, f.BigEndian, signed)
				if bits == 8 {
					// 8-bit WAV data is unsigned
					v += 128
				}
				buf.Data[i] = v
			}
			buf.Data = buf.Data[:samples]

			if werr := enc.Write(buf); werr != nil {
				return frames, fmt.Errorf("writing wav: %w", werr)
			}
			buf.Data = buf.Data[:cap(buf.Data)]
			frames += int64(n / s.FrameSize())
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return frames, fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("closing wav: %w", err)
	}
	return frames, nil
}
