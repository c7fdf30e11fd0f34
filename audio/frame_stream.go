// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// FrameStream reads a ByteSource in whole sample frames. Every byte count it
// returns from Read and Skip is a multiple of the frame size; bytes that do not
// complete a frame are held back until the next call.
//
// A FrameStream is not safe for concurrent use.
type FrameStream struct {
	src    ByteSource
	format Format

	frameSize   int
	frameLength int64 // NotSpecified when unbounded
	framePos    int64

	// fractional frame carried into the next read, always < frameSize bytes
	pushback    []byte
	pushbackLen int

	markPos         int64
	markPushback    []byte
	markPushbackLen int

	oneByte [1]byte
}

// NewFrameStream wraps src. frameLength is the number of frames in the stream
// or NotSpecified. A format without a valid frame size is read byte by byte.
func NewFrameStream(src ByteSource, format Format, frameLength int64) *FrameStream {
	frameSize := format.FrameSize
	if frameSize <= 0 {
		frameSize = 1
	}

	if frameLength < 0 {
		frameLength = NotSpecified
	}

	return &FrameStream{
		src:          src,
		format:       format,
		frameSize:    frameSize,
		frameLength:  frameLength,
		pushback:     make([]byte, frameSize),
		markPushback: make([]byte, frameSize),
	}
}

func (s *FrameStream) Format() Format { return s.format }

// FrameSize is the normalised frame size in bytes, never less than 1.
func (s *FrameStream) FrameSize() int { return s.frameSize }

// FrameLength is the declared number of frames, or NotSpecified.
func (s *FrameStream) FrameLength() int64 { return s.frameLength }

// FramePosition is the number of whole frames handed out so far.
func (s *FrameStream) FramePosition() int64 { return s.framePos }

func (s *FrameStream) bounded() bool { return s.frameLength != NotSpecified }

// remainingFrames is only meaningful on bounded streams.
func (s *FrameStream) remainingFrames() int64 {
	if s.framePos >= s.frameLength {
		return 0
	}
	return s.frameLength - s.framePos
}

// ReadByte reads a single byte. It is only valid when frames are one byte wide.
func (s *FrameStream) ReadByte() (byte, error) {
	if s.frameSize != 1 {
		return 0, ErrFrameSizeNotOne
	}

	var b [1]byte
	n, err := s.Read(b[:])
	if n == 1 {
		return b[0], nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return 0, err
}

// Read fills p with whole frames. A p shorter than one frame yields (0, nil).
// End of data is reported as (0, io.EOF) only when the call delivers nothing.
func (s *FrameStream) Read(p []byte) (int, error) {
	length := len(p) - len(p)%s.frameSize
	if length == 0 {
		return 0, nil
	}

	if s.bounded() {
		left := s.remainingFrames()
		if left == 0 {
			return 0, io.EOF
		}
		if int64(length/s.frameSize) > left {
			length = int(left) * s.frameSize
		}
	}

	total := 0
	if s.pushbackLen > 0 {
		total = copy(p, s.pushback[:s.pushbackLen])
		s.pushbackLen = 0
	}

	var srcErr error
	for total < s.frameSize {
		n, err := s.src.Read(p[total:length])
		total += n
		if err != nil {
			srcErr = err
			break
		}
		if n == 0 {
			break
		}
	}

	rem := total % s.frameSize
	if rem > 0 {
		s.pushbackLen = copy(s.pushback, p[total-rem:total])
		total -= rem
	}
	s.framePos += int64(total / s.frameSize)

	if errors.Is(srcErr, io.EOF) {
		if total == 0 {
			return 0, io.EOF
		}
		return total, nil
	}
	return total, srcErr
}

// Skip discards up to n bytes, truncated to whole frames, and returns the
// number of bytes skipped.
func (s *FrameStream) Skip(n int64) (int64, error) {
	n -= n % int64(s.frameSize)
	if n <= 0 {
		return 0, nil
	}

	if s.bounded() {
		left := s.remainingFrames()
		if left == 0 {
			return 0, nil
		}
		if n/int64(s.frameSize) > left {
			n = left * int64(s.frameSize)
		}
	}

	// pushback is given back if the source fails
	carried := s.pushbackLen
	remaining := n - int64(carried)
	s.pushbackLen = 0

	for remaining > 0 {
		skipped, err := s.src.Skip(remaining)
		if err != nil {
			s.pushbackLen = carried
			return 0, fmt.Errorf("skip: %w", err)
		}

		if skipped <= 0 {
			// Skip may report zero both at EOF and on sources that simply
			// cannot skip, so look for one more byte.
			m, rerr := s.src.Read(s.oneByte[:])
			if m == 0 {
				if rerr == nil || errors.Is(rerr, io.EOF) {
					break
				}
				s.pushbackLen = carried
				return 0, fmt.Errorf("skip: %w", rerr)
			}
			skipped = 1
		}

		remaining -= min(skipped, remaining)
	}

	done := n - remaining
	if done%int64(s.frameSize) != 0 {
		return 0, fmt.Errorf("skipped %d bytes with frame size %d: %w", done, s.frameSize, ErrStreamAlignment)
	}

	s.framePos += done / int64(s.frameSize)
	return done, nil
}

// Available reports the bytes the source can deliver without blocking,
// clamped to what is left before the frame length bound.
func (s *FrameStream) Available() (int, error) {
	n, err := s.src.Available()
	if err != nil {
		return 0, fmt.Errorf("available: %w", err)
	}

	if s.bounded() {
		left := s.remainingFrames() * int64(s.frameSize)
		if int64(n) > left {
			n = int(left)
		}
	}
	return n, nil
}

func (s *FrameStream) MarkSupported() bool { return s.src.MarkSupported() }

// Mark checkpoints the frame position and any carried partial frame together
// with the source position.
func (s *FrameStream) Mark(readLimit int) {
	s.src.Mark(readLimit)
	if !s.src.MarkSupported() {
		return
	}

	s.markPos = s.framePos
	s.markPushbackLen = copy(s.markPushback, s.pushback[:s.pushbackLen])
}

// Reset rewinds to the last Mark. Without a prior Mark the stream goes back
// to the state it was created in, if the source allows.
func (s *FrameStream) Reset() error {
	if !s.src.MarkSupported() {
		return ErrMarkNotSupported
	}

	if err := s.src.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	s.framePos = s.markPos
	s.pushbackLen = copy(s.pushback, s.markPushback[:s.markPushbackLen])
	return nil
}

// Close closes the source. The stream must not be used afterwards.
func (s *FrameStream) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
