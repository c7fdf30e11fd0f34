// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audframe/utils"
)

// SampleSource encodes a float Source as 16-bit signed little-endian PCM.
type SampleSource struct {
	src     Source
	tmp     []float32
	pending []byte
	off     int
	eof     bool
}

func NewSampleSource(src Source) *SampleSource {
	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	if ch := src.Channels(); ch > 0 && size%ch != 0 {
		size += ch - size%ch
	}

	return &SampleSource{
		src:     src,
		tmp:     make([]float32, size),
		pending: make([]byte, 0, size*2),
	}
}

// SampleFormat is the byte layout produced by NewSampleSource(src).
func SampleFormat(src Source) Format {
	return NewPCMFormat(float64(src.SampleRate()), 16, src.Channels(), true, false)
}

func (s *SampleSource) fill() error {
	n, err := s.src.ReadSamples(s.tmp)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w", err)
	}
	if errors.Is(err, io.EOF) {
		s.eof = true
	}

	s.pending = s.pending[:n*2]
	s.off = 0
	for i := range n {
		binary.LittleEndian.PutUint16(s.pending[2*i:], uint16(utils.Float32ToInt16(s.tmp[i])))
	}
	return nil
}

func (s *SampleSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if s.off >= len(s.pending) {
		if s.eof {
			return 0, io.EOF
		}
		if err := s.fill(); err != nil {
			return 0, err
		}
		if s.off >= len(s.pending) {
			if s.eof {
				return 0, io.EOF
			}
			return 0, nil
		}
	}

	n := copy(p, s.pending[s.off:])
	s.off += n
	return n, nil
}

func (s *SampleSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	skipped, err := io.CopyN(io.Discard, readerOnly{s}, n)
	if err != nil && !errors.Is(err, io.EOF) {
		return skipped, err
	}
	return skipped, nil
}

// Available only counts bytes already decoded.
func (s *SampleSource) Available() (int, error) { return len(s.pending) - s.off, nil }

func (s *SampleSource) MarkSupported() bool { return false }
func (s *SampleSource) Mark(int)            {}
func (s *SampleSource) Reset() error        { return ErrMarkNotSupported }

func (s *SampleSource) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
