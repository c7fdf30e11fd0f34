// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audframe/audio"
)

// go-mp3 always decodes to 16-bit little-endian interleaved stereo
const (
	channels      = 2
	bitsPerSample = 16
	bytesPerFrame = channels * bitsPerSample / 8
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
	Length() int64
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.FrameStream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 can only seek when the input can
	_, seekable := r.(io.Seeker)
	closer, _ := r.(io.Closer)
	return newStream(dec, seekable, closer), nil
}

// newStream exposes the decoder's PCM output as a frame stream. The length is
// known only when the decoder could scan the whole input.
func newStream(dec mp3Reader, seekable bool, closer io.Closer) *audio.FrameStream {
	var src *audio.ReaderSource
	if seekable {
		src = audio.NewReaderSource(dec)
	} else {
		// hide Seek so mark/reset replays instead
		src = audio.NewReaderSource(struct{ io.Reader }{dec})
	}
	if closer != nil {
		src.CloseWith(closer)
	}

	frames := int64(audio.NotSpecified)
	if n := dec.Length(); n >= 0 {
		frames = n / bytesPerFrame
	}

	format := audio.NewPCMFormat(float64(dec.SampleRate()), bitsPerSample, channels, true, false)
	return audio.NewFrameStream(src, format, frames)
}
