// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
)

// ReaderSource adapts an io.Reader to a ByteSource.
//
// Mark/Reset use the reader's own Seek when it has one. Otherwise the bytes
// read after Mark are kept, up to the mark's read limit, and replayed on Reset.
type ReaderSource struct {
	r      io.Reader
	seeker io.Seeker
	closer io.Closer

	markOffset int64
	seekMarked bool

	// replay buffer for readers that cannot seek
	kept      []byte
	keptPos   int
	markLimit int
	marked    bool
}

// NewReaderSource wraps r. If r is an io.Closer it is closed with the source.
//
// A reader that has a Seek method but cannot actually seek, like a pipe
// behind *os.File, falls back to the replay buffer.
func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{r: r}
	if sk, ok := r.(io.Seeker); ok {
		if _, err := sk.Seek(0, io.SeekCurrent); err == nil {
			s.seeker = sk
		}
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// CloseWith makes Close close c instead of the wrapped reader, e.g. the file
// behind an io.SectionReader.
func (s *ReaderSource) CloseWith(c io.Closer) *ReaderSource {
	s.closer = c
	return s
}

// NewBytesSource is a markable source over an in-memory buffer.
func NewBytesSource(b []byte) *ReaderSource {
	return NewReaderSource(bytes.NewReader(b))
}

func (s *ReaderSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if s.keptPos < len(s.kept) {
		n := copy(p, s.kept[s.keptPos:])
		s.keptPos += n
		if !s.marked && s.keptPos == len(s.kept) {
			s.kept = s.kept[:0]
			s.keptPos = 0
		}
		return n, nil
	}

	n, err := s.r.Read(p)
	if s.marked && n > 0 {
		if len(s.kept)+n > s.markLimit {
			s.marked = false
			s.kept = s.kept[:0]
			s.keptPos = 0
		} else {
			s.kept = append(s.kept, p[:n]...)
			s.keptPos = len(s.kept)
		}
	}
	return n, err
}

// Skip reads and discards up to n bytes. Reaching the end of the reader is
// not an error; the short count tells the caller.
func (s *ReaderSource) Skip(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}

	skipped, err := io.CopyN(io.Discard, readerOnly{s}, n)
	if err != nil && !errors.Is(err, io.EOF) {
		return skipped, fmt.Errorf("%w", err)
	}
	return skipped, nil
}

// Available counts replayable bytes plus whatever is left in the reader. That
// comes from a Len method, as bytes.Reader has, or from the distance between
// the seek offset and the size of an io.SectionReader or a regular file.
func (s *ReaderSource) Available() (int, error) {
	n := len(s.kept) - s.keptPos
	if l, ok := s.r.(interface{ Len() int }); ok {
		return n + l.Len(), nil
	}
	if s.seeker == nil {
		return n, nil
	}

	size, ok := s.size()
	if !ok {
		return n, nil
	}
	cur, err := s.seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return n, fmt.Errorf("available: %w", err)
	}
	if left := size - cur; left > 0 {
		n += int(min(left, math.MaxInt))
	}
	return n, nil
}

func (s *ReaderSource) size() (int64, bool) {
	switch r := s.r.(type) {
	case interface{ Size() int64 }:
		return r.Size(), true
	case interface{ Stat() (fs.FileInfo, error) }:
		fi, err := r.Stat()
		if err != nil || !fi.Mode().IsRegular() {
			return 0, false
		}
		return fi.Size(), true
	}
	return 0, false
}

func (s *ReaderSource) MarkSupported() bool { return true }

func (s *ReaderSource) Mark(readLimit int) {
	if s.seeker != nil {
		off, err := s.seeker.Seek(0, io.SeekCurrent)
		s.seekMarked = err == nil
		s.markOffset = off
		return
	}

	// drop what was already replayed, keep what is still pending
	pending := s.kept[s.keptPos:]
	s.kept = append(s.kept[:0], pending...)
	s.keptPos = 0
	s.markLimit = max(readLimit, len(s.kept))
	s.marked = true
}

func (s *ReaderSource) Reset() error {
	if s.seeker != nil {
		if !s.seekMarked {
			s.markOffset = 0
		}
		if _, err := s.seeker.Seek(s.markOffset, io.SeekStart); err != nil {
			return fmt.Errorf("%w", err)
		}
		return nil
	}

	if !s.marked {
		return ErrResetWithoutMark
	}
	s.keptPos = 0
	return nil
}

func (s *ReaderSource) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readerOnly hides ReaderSource's other methods from io.CopyN.
type readerOnly struct{ io.Reader }
