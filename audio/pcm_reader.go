// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audframe/utils"
)

// PCMReader decodes a linear PCM FrameStream into float samples.
type PCMReader struct {
	stream   *FrameStream
	channels int
	size     int // bytes per sample
	signed   bool
	big      bool
	scale    float32
	buf      []byte
}

// NewPCMReader accepts integer PCM of 1 to 4 bytes per sample.
func NewPCMReader(stream *FrameStream) (*PCMReader, error) {
	f := stream.Format()

	if f.Encoding != PCMSigned && f.Encoding != PCMUnsigned {
		return nil, fmt.Errorf("%s: %w", f.Encoding, ErrUnsupportedEncoding)
	}

	size := f.BytesPerSample()
	if size < 1 || size > 4 || f.Channels <= 0 || size*f.Channels != stream.FrameSize() {
		return nil, fmt.Errorf("%s: %w", f, ErrUnsupportedEncoding)
	}

	return &PCMReader{
		stream:   stream,
		channels: f.Channels,
		size:     size,
		signed:   f.Encoding == PCMSigned,
		big:      f.BigEndian,
		scale:    utils.SampleScale(8 * size),
		buf:      make([]byte, 4096*stream.FrameSize()),
	}, nil
}

func (r *PCMReader) SampleRate() int { return int(r.stream.Format().SampleRate) }
func (r *PCMReader) Channels() int   { return r.channels }
func (r *PCMReader) BufSize() int    { return len(r.buf) / r.size }

func (r *PCMReader) Close() error {
	err := r.stream.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples reads whole frames only, so len(dst) must be a multiple of the
// channel count.
func (r *PCMReader) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * r.size
	if cap(r.buf) < want {
		r.buf = make([]byte, want)
	}

	n, err := r.stream.Read(r.buf[:want])
	samples := n / r.size
	for i := range samples {
		v := utils.Sample(r.buf[i*r.size:], r.size, r.big, r.signed)
		dst[i] = float32(v) / r.scale
	}
	return samples, err
}
