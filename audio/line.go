// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// TargetLine is a live capture device that delivers PCM bytes as they are
// recorded.
type TargetLine interface {
	Format() Format
	// Read blocks until p holds whole frames or the line stops.
	Read(p []byte) (int, error)
	// Available is the number of captured bytes that can be read without blocking.
	Available() int
	IsActive() bool
	Start() error
	// Flush discards captured data that has not been read yet.
	Flush()
	Stop()
	Close() error
}

// LineSource is a ByteSource reading from a TargetLine.
type LineSource struct {
	line    TargetLine
	scratch []byte
}

func NewLineSource(line TargetLine) *LineSource {
	return &LineSource{line: line}
}

// NewLineStream returns an unbounded FrameStream over line.
func NewLineStream(line TargetLine) *FrameStream {
	return NewFrameStream(NewLineSource(line), line.Format(), NotSpecified)
}

func (s *LineSource) Read(p []byte) (int, error) {
	n, err := s.line.Read(p)
	if errors.Is(err, io.EOF) {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 && len(p) > 0 && !s.line.IsActive() {
		return 0, io.EOF
	}
	return n, nil
}

// Skip reads and throws away captured data; lines cannot seek.
func (s *LineSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	if s.scratch == nil {
		size := 4096
		if fs := s.line.Format().FrameSize; fs > 0 {
			size -= size % fs
			if size == 0 {
				size = fs
			}
		}
		s.scratch = make([]byte, size)
	}

	var skipped int64
	for skipped < n {
		chunk := min(int64(len(s.scratch)), n-skipped)
		m, err := s.Read(s.scratch[:chunk])
		skipped += int64(m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return skipped, err
		}
		if m == 0 {
			break
		}
	}
	return skipped, nil
}

func (s *LineSource) Available() (int, error) { return s.line.Available(), nil }

func (s *LineSource) MarkSupported() bool { return false }
func (s *LineSource) Mark(int)            {}
func (s *LineSource) Reset() error        { return ErrMarkNotSupported }

// Close stops an active line before closing it. Closing a line that is still
// capturing can block on data nobody will read.
func (s *LineSource) Close() error {
	if s.line.IsActive() {
		s.line.Flush()
		s.line.Stop()
	}

	if err := s.line.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
