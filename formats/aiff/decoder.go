// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// defaultChunk is the number of samples pulled from the decoder per fill.
const defaultChunk = 4096

// pcmSource re-encodes the decoder's integer samples as big-endian bytes,
// which is how AIFF stores them on disk.
type pcmSource struct {
	dec    aiffReader
	size   int
	closer io.Closer

	intBuf  *goaudio.IntBuffer
	pending []byte
	off     int
}

func newPCMSource(dec aiffReader, format *goaudio.Format, bits int, closer io.Closer) *pcmSource {
	return &pcmSource{
		dec:    dec,
		size:   (bits + 7) / 8,
		closer: closer,
		intBuf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, defaultChunk),
			SourceBitDepth: bits,
		},
	}
}

func (s *pcmSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if s.off == len(s.pending) {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}

	n := copy(p, s.pending[s.off:])
	s.off += n
	return n, nil
}

func (s *pcmSource) fill() error {
	s.intBuf.Data = s.intBuf.Data[:cap(s.intBuf.Data)]
	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w", err)
		}
		return io.EOF
	}

	need := n * s.size
	if cap(s.pending) < need {
		s.pending = make([]byte, need)
	}
	s.pending = s.pending[:need]
	for i, v := range s.intBuf.Data[:n] {
		utils.PutSample(s.pending[i*s.size:], v, s.size, true)
	}
	s.off = 0
	return nil
}

func (s *pcmSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	skipped, err := io.CopyN(io.Discard, struct{ io.Reader }{s}, n)
	if err != nil && !errors.Is(err, io.EOF) {
		return skipped, err
	}
	return skipped, nil
}

func (s *pcmSource) Available() (int, error) { return len(s.pending) - s.off, nil }
func (s *pcmSource) MarkSupported() bool      { return false }
func (s *pcmSource) Mark(int)                 {}
func (s *pcmSource) Reset() error             { return audio.ErrMarkNotSupported }

func (s *pcmSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type Decoder struct{}

// Decode reads the COMM chunk and returns a stream of the sound data as
// signed big-endian PCM, bounded to the file's sample frame count.
func (Decoder) Decode(r io.Reader) (*audio.FrameStream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	bits := int(dec.BitDepth)
	format := dec.Format()
	if format == nil || format.NumChannels < 1 || bits < 8 || bits > 32 {
		return nil, fmt.Errorf("%d bit: %w", bits, ErrUnsupportedAiffLayout)
	}

	// AIFF samples are always signed
	streamFormat := audio.NewPCMFormat(float64(format.SampleRate), bits, format.NumChannels, true, true)

	closer, _ := r.(io.Closer)
	src := newPCMSource(dec, format, bits, closer)

	return audio.NewFrameStream(src, streamFormat, int64(dec.NumSampleFrames)), nil
}
