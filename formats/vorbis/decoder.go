// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audframe/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

const defaultBufSize = 4096

// source adapts oggvorbis.Reader to audio.Source.
type source struct {
	dec    oggReader
	closer io.Closer
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BufSize() int    { return defaultBufSize }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	// oggvorbis fills whole frames and counts values, not frames
	ch := s.dec.Channels()
	dst = dst[:len(dst)-len(dst)%ch]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}
	return n, err
}

type Decoder struct{}

// Decode returns the decoded Vorbis audio as 16-bit little-endian PCM.
func (Decoder) Decode(r io.Reader) (*audio.FrameStream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	closer, _ := r.(io.Closer)
	return newStream(dec, closer), nil
}

func newStream(dec oggReader, closer io.Closer) *audio.FrameStream {
	src := &source{dec: dec, closer: closer}

	// Length is in frames, zero when the input could not be scanned
	frames := int64(audio.NotSpecified)
	if n := dec.Length(); n > 0 {
		frames = n
	}

	return audio.NewFrameStream(audio.NewSampleSource(src), audio.SampleFormat(src), frames)
}
