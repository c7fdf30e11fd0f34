// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audframe/internal/audiotest"
)

// stereo16 is 16-bit stereo, 4 bytes per frame.
var stereo16 = NewPCMFormat(44100, 16, 2, true, false)

func TestNewFrameStream_NormalizesFrameSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		frameSize int
		want      int
	}{
		{"not specified", NotSpecified, 1},
		{"zero", 0, 1},
		{"negative", -7, 1},
		{"one", 1, 1},
		{"four", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := Format{Encoding: PCMSigned, FrameSize: tt.frameSize}
			s := NewFrameStream(audiotest.NewChunkedSource(nil), f, NotSpecified)
			if got := s.FrameSize(); got != tt.want {
				t.Errorf("FrameSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewFrameStream_NoIO(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(16))
	s := NewFrameStream(src, stereo16, 4)

	if src.Reads() != 0 || src.Pos() != 0 {
		t.Errorf("constructor touched the source: reads=%d pos=%d", src.Reads(), src.Pos())
	}
	if s.FrameLength() != 4 {
		t.Errorf("FrameLength() = %d, want 4", s.FrameLength())
	}
	if s.FramePosition() != 0 {
		t.Errorf("FramePosition() = %d, want 0", s.FramePosition())
	}
	if s.Format() != stereo16 {
		t.Errorf("Format() = %v, want %v", s.Format(), stereo16)
	}
}

func TestFrameStream_ReadTruncatesToWholeFrames(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(64))
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 10)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 8 {
		t.Errorf("Read() n = %d, want 8", n)
	}
	if src.Pos() != 8 {
		t.Errorf("source consumed %d bytes, want 8", src.Pos())
	}
	if s.FramePosition() != 2 {
		t.Errorf("FramePosition() = %d, want 2", s.FramePosition())
	}
}

func TestFrameStream_ReadShorterThanFrame(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(16))
	s := NewFrameStream(src, stereo16, NotSpecified)

	for _, size := range []int{0, 1, 3} {
		n, err := s.Read(make([]byte, size))
		if n != 0 || err != nil {
			t.Errorf("Read(len=%d) = (%d, %v), want (0, nil)", size, n, err)
		}
	}
	if src.Reads() != 0 {
		t.Errorf("source was read %d times, want 0", src.Reads())
	}
}

func TestFrameStream_ChunkedSourceStaysAligned(t *testing.T) {
	t.Parallel()

	chunkings := [][]int{
		{3},
		{3, 3, 2},
		{1},
		{5, 1, 7},
		{2, 9},
	}

	for _, chunks := range chunkings {
		data := audiotest.Sequential(203) // not a frame multiple
		src := audiotest.NewChunkedSource(data, chunks...)
		s := NewFrameStream(src, stereo16, NotSpecified)

		var got []byte
		buf := make([]byte, 8)
		for {
			n, err := s.Read(buf)
			if n%4 != 0 {
				t.Fatalf("chunks %v: Read() n = %d, not frame aligned", chunks, n)
			}
			got = append(got, buf[:n]...)

			if s.pushbackLen >= s.frameSize {
				t.Fatalf("chunks %v: pushback holds %d bytes", chunks, s.pushbackLen)
			}
			if int64(len(got)) != s.FramePosition()*4 {
				t.Fatalf("chunks %v: position %d does not match %d bytes", chunks, s.FramePosition(), len(got))
			}

			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("chunks %v: Read() error = %v", chunks, err)
			}
		}

		if !bytes.Equal(got, data[:200]) {
			t.Errorf("chunks %v: read %d bytes, content mismatch", chunks, len(got))
		}
	}
}

func TestFrameStream_ReadAssemblesFrameFromSmallReads(t *testing.T) {
	t.Parallel()

	// 3 + 3 + 2 bytes against a 4-byte frame
	src := audiotest.NewChunkedSource(audiotest.Sequential(8), 3, 3, 2)
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("first Read() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("first Read() n = %d, want 4", n)
	}
	if !bytes.Equal(buf[:4], []byte{0, 1, 2, 3}) {
		t.Errorf("first frame = %v", buf[:4])
	}
	if s.pushbackLen != 2 {
		t.Errorf("pushback = %d bytes, want 2", s.pushbackLen)
	}

	n, err = s.Read(buf)
	if err != nil {
		t.Fatalf("second Read() error = %v", err)
	}
	if n != 4 || !bytes.Equal(buf[:4], []byte{4, 5, 6, 7}) {
		t.Errorf("second Read() = %d %v, want 4 [4 5 6 7]", n, buf[:n])
	}

	n, err = s.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("third Read() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestFrameStream_EOFOnlyWhenNothingDelivered(t *testing.T) {
	t.Parallel()

	// Source returns its last bytes together with io.EOF.
	src := audiotest.NewChunkedSource(audiotest.Sequential(6), 3)
	src.EOFWithData = true
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 8)
	n, err := s.Read(buf)
	if n != 4 || err != nil {
		t.Fatalf("Read() = (%d, %v), want (4, nil)", n, err)
	}

	n, err = s.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read() at end = (%d, %v), want (0, io.EOF)", n, err)
	}
	if s.FramePosition() != 1 {
		t.Errorf("FramePosition() = %d, want 1", s.FramePosition())
	}
}

func TestFrameStream_PushbackDeliveredBeforeEOF(t *testing.T) {
	t.Parallel()

	// 3 bytes then 5 bytes with io.EOF: pushback from the first call plus
	// the final chunk completes two frames.
	src := audiotest.NewChunkedSource(audiotest.Sequential(8), 3, 5)
	src.EOFWithData = true
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 4)
	n, err := s.Read(buf)
	if n != 0 && n != 4 {
		t.Fatalf("Read() n = %d", n)
	}
	total := n

	buf = make([]byte, 16)
	for {
		n, err = s.Read(buf)
		total += n
		if err != nil {
			break
		}
	}
	if err != io.EOF {
		t.Fatalf("final error = %v, want io.EOF", err)
	}
	if total != 8 {
		t.Errorf("delivered %d bytes, want 8", total)
	}
}

func TestFrameStream_BoundedRead(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(64))
	s := NewFrameStream(src, stereo16, 5)

	buf := make([]byte, 64)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 20 {
		t.Errorf("Read() n = %d, want 20", n)
	}
	if s.FramePosition() != 5 {
		t.Errorf("FramePosition() = %d, want 5", s.FramePosition())
	}

	n, err = s.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read() past bound = (%d, %v), want (0, io.EOF)", n, err)
	}
	if src.Pos() != 20 {
		t.Errorf("source consumed %d bytes, want 20", src.Pos())
	}
}

func TestFrameStream_BoundedReadAtLimitIgnoresSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(64))
	s := NewFrameStream(src, stereo16, 5)

	if _, err := s.Skip(20); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	reads := src.Reads()

	n, err := s.Read(make([]byte, 8))
	if n != 0 || err != io.EOF {
		t.Errorf("Read() = (%d, %v), want (0, io.EOF)", n, err)
	}
	if src.Reads() != reads {
		t.Error("Read() at bound reached the source")
	}
}

func TestFrameStream_ReadPropagatesSourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	src := audiotest.NewChunkedSource(audiotest.Sequential(64))
	src.Err = boom
	src.ErrAt = 8
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 8)
	if n, err := s.Read(buf); n != 8 || err != nil {
		t.Fatalf("Read() = (%d, %v), want (8, nil)", n, err)
	}

	_, err := s.Read(buf)
	if !errors.Is(err, boom) {
		t.Errorf("Read() error = %v, want %v", err, boom)
	}
}

func TestFrameStream_ReadByte(t *testing.T) {
	t.Parallel()

	t.Run("frame size one", func(t *testing.T) {
		t.Parallel()

		f := NewPCMFormat(8000, 8, 1, false, false)
		s := NewFrameStream(NewBytesSource([]byte{7, 9}), f, NotSpecified)

		for _, want := range []byte{7, 9} {
			b, err := s.ReadByte()
			if err != nil || b != want {
				t.Fatalf("ReadByte() = (%d, %v), want (%d, nil)", b, err, want)
			}
		}
		if _, err := s.ReadByte(); err != io.EOF {
			t.Errorf("ReadByte() at end error = %v, want io.EOF", err)
		}
	})

	t.Run("multi byte frame", func(t *testing.T) {
		t.Parallel()

		s := NewFrameStream(NewBytesSource(audiotest.Sequential(8)), stereo16, NotSpecified)
		if _, err := s.ReadByte(); !errors.Is(err, ErrFrameSizeNotOne) {
			t.Errorf("ReadByte() error = %v, want ErrFrameSizeNotOne", err)
		}
	})
}

func TestFrameStream_SkipTruncates(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(64))
	s := NewFrameStream(src, stereo16, NotSpecified)

	tests := []struct {
		n    int64
		want int64
	}{
		{-4, 0},
		{0, 0},
		{3, 0},
		{10, 8},
		{4, 4},
	}

	var total int64
	for _, tt := range tests {
		got, err := s.Skip(tt.n)
		if err != nil {
			t.Fatalf("Skip(%d) error = %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Skip(%d) = %d, want %d", tt.n, got, tt.want)
		}
		total += got
	}

	if s.FramePosition() != total/4 {
		t.Errorf("FramePosition() = %d, want %d", s.FramePosition(), total/4)
	}
	if int64(src.Pos()) != total {
		t.Errorf("source position = %d, want %d", src.Pos(), total)
	}
}

func TestFrameStream_SkipSaturatesAtBound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		extra int64
	}{
		{"exact source", 0},
		{"source over-reports", 4},
		{"source over-reports by part of a frame", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewChunkedSource(audiotest.Sequential(64))
			src.SkipExtra = tt.extra
			s := NewFrameStream(src, stereo16, 5)

			got, err := s.Skip(100)
			if err != nil {
				t.Fatalf("Skip() error = %v", err)
			}
			if got != 20 {
				t.Errorf("Skip(100) = %d, want 20", got)
			}
			if s.FramePosition() != 5 {
				t.Errorf("FramePosition() = %d, want 5", s.FramePosition())
			}

			got, err = s.Skip(4)
			if got != 0 || err != nil {
				t.Errorf("Skip() at bound = (%d, %v), want (0, nil)", got, err)
			}
		})
	}
}

func TestFrameStream_SkipKeepsPushbackOnSourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")

	tests := []struct {
		name  string
		setup func(*audiotest.ChunkedSource)
	}{
		{"skip fails", func(c *audiotest.ChunkedSource) { c.SkipErr = boom }},
		{"fallback read fails", func(c *audiotest.ChunkedSource) {
			c.SkipDisabled = true
			c.Err = boom
			c.ErrAt = 6
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewChunkedSource(audiotest.Sequential(64), 6)
			s := NewFrameStream(src, stereo16, NotSpecified)

			buf := make([]byte, 8)
			if n, _ := s.Read(buf); n != 4 {
				t.Fatalf("Read() n = %d, want 4", n)
			}
			tt.setup(src)

			if _, err := s.Skip(8); !errors.Is(err, boom) {
				t.Fatalf("Skip() error = %v, want %v", err, boom)
			}
			if s.pushbackLen != 2 {
				t.Errorf("pushback after failed Skip = %d, want 2", s.pushbackLen)
			}
			if s.FramePosition() != 1 {
				t.Errorf("FramePosition() = %d, want 1", s.FramePosition())
			}

			// the carried bytes still lead the next frame
			src.SkipErr = nil
			src.Err = nil
			n, err := s.Read(buf[:4])
			if err != nil || n != 4 {
				t.Fatalf("Read() = (%d, %v), want (4, nil)", n, err)
			}
			if !bytes.Equal(buf[:4], []byte{4, 5, 6, 7}) {
				t.Errorf("Read() after failed Skip = %v, want [4 5 6 7]", buf[:4])
			}
		})
	}
}

func TestFrameStream_SkipReadsWhenSourceCannotSkip(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(64))
	src.SkipDisabled = true
	s := NewFrameStream(src, stereo16, NotSpecified)

	got, err := s.Skip(10)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if got != 8 {
		t.Errorf("Skip(10) = %d, want 8", got)
	}
	if src.Pos() != 8 {
		t.Errorf("source position = %d, want 8", src.Pos())
	}

	buf := make([]byte, 4)
	if _, err := s.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(buf, []byte{8, 9, 10, 11}) {
		t.Errorf("Read() after skip = %v, want [8 9 10 11]", buf)
	}
}

func TestFrameStream_SkipStopsAtTrueEOF(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(8))
	src.SkipDisabled = true
	s := NewFrameStream(src, stereo16, NotSpecified)

	got, err := s.Skip(16)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if got != 8 {
		t.Errorf("Skip(16) = %d, want 8", got)
	}
	if s.FramePosition() != 2 {
		t.Errorf("FramePosition() = %d, want 2", s.FramePosition())
	}
}

func TestFrameStream_SkipAlignmentViolation(t *testing.T) {
	t.Parallel()

	t.Run("source ends mid frame", func(t *testing.T) {
		t.Parallel()

		src := audiotest.NewChunkedSource(audiotest.Sequential(6))
		s := NewFrameStream(src, stereo16, NotSpecified)

		_, err := s.Skip(8)
		if !errors.Is(err, ErrStreamAlignment) {
			t.Fatalf("Skip() error = %v, want ErrStreamAlignment", err)
		}
		if s.FramePosition() != 0 {
			t.Errorf("FramePosition() = %d, want 0 after failed skip", s.FramePosition())
		}
	})

	t.Run("source cannot skip and ends mid frame", func(t *testing.T) {
		t.Parallel()

		src := audiotest.NewChunkedSource(audiotest.Sequential(10))
		src.SkipDisabled = true
		s := NewFrameStream(src, stereo16, NotSpecified)

		if _, err := s.Skip(12); !errors.Is(err, ErrStreamAlignment) {
			t.Errorf("Skip() error = %v, want ErrStreamAlignment", err)
		}
		if s.FramePosition() != 0 {
			t.Errorf("FramePosition() = %d, want 0 after failed skip", s.FramePosition())
		}
	})
}

func TestFrameStream_SkipConsumesPushback(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(64), 6)
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 8)
	if n, _ := s.Read(buf); n != 4 {
		t.Fatalf("Read() n = %d, want 4", n)
	}
	if s.pushbackLen != 2 {
		t.Fatalf("pushback = %d, want 2", s.pushbackLen)
	}

	got, err := s.Skip(8)
	if err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	if got != 8 {
		t.Errorf("Skip(8) = %d, want 8", got)
	}

	n, err := s.Read(buf[:4])
	if err != nil || n != 4 {
		t.Fatalf("Read() = (%d, %v)", n, err)
	}
	if !bytes.Equal(buf[:4], []byte{12, 13, 14, 15}) {
		t.Errorf("Read() after skip = %v, want [12 13 14 15]", buf[:4])
	}
	if s.FramePosition() != 4 {
		t.Errorf("FramePosition() = %d, want 4", s.FramePosition())
	}
}

func TestFrameStream_Available(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int64
		skip   int64
		want   int
	}{
		{"unbounded", NotSpecified, 0, 64},
		{"bounded above source", 100, 0, 64},
		{"bounded below source", 5, 0, 20},
		{"bounded after skip", 5, 12, 8},
		{"at bound", 5, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewFrameStream(audiotest.NewChunkedSource(audiotest.Sequential(64)), stereo16, tt.length)
			if tt.skip > 0 {
				if _, err := s.Skip(tt.skip); err != nil {
					t.Fatalf("Skip() error = %v", err)
				}
			}

			got, err := s.Available()
			if err != nil {
				t.Fatalf("Available() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Available() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFrameStream_MarkReset(t *testing.T) {
	t.Parallel()

	// 2 frames in, then a 6 byte read leaves 2 bytes of pushback.
	src := audiotest.NewChunkedSource(audiotest.Sequential(128), 6)
	s := NewFrameStream(src, stereo16, NotSpecified)

	buf := make([]byte, 8)
	if n, _ := s.Read(buf); n != 4 {
		t.Fatalf("Read() n = %d, want 4", n)
	}
	if n, _ := s.Read(buf); n != 8 {
		t.Fatalf("Read() n = %d, want 8", n)
	}
	if s.FramePosition() != 3 || s.pushbackLen != 0 {
		t.Fatalf("position %d pushback %d", s.FramePosition(), s.pushbackLen)
	}
	if n, _ := s.Read(buf); n != 4 {
		t.Fatalf("Read() n = %d, want 4", n)
	}
	if s.pushbackLen != 2 {
		t.Fatalf("pushback = %d, want 2", s.pushbackLen)
	}

	markPos := s.FramePosition()
	s.Mark(100)
	if src.MarkLimit() != 100 {
		t.Errorf("source mark limit = %d, want 100", src.MarkLimit())
	}

	first := readN(t, s, 20)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if s.FramePosition() != markPos {
		t.Errorf("FramePosition() after Reset = %d, want %d", s.FramePosition(), markPos)
	}

	second := readN(t, s, 20)
	if !bytes.Equal(first, second) {
		t.Errorf("replay after Reset differs:\n first %v\nsecond %v", first, second)
	}
}

func TestFrameStream_ResetWithoutMarkSupport(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(16))
	src.NoMark = true
	s := NewFrameStream(src, stereo16, NotSpecified)

	if s.MarkSupported() {
		t.Error("MarkSupported() = true, want false")
	}

	s.Mark(10)
	readN(t, s, 4)

	if err := s.Reset(); !errors.Is(err, ErrMarkNotSupported) {
		t.Errorf("Reset() error = %v, want ErrMarkNotSupported", err)
	}
	if s.FramePosition() != 1 {
		t.Errorf("FramePosition() = %d, want 1", s.FramePosition())
	}
}

func TestFrameStream_ResetPropagatesSourceError(t *testing.T) {
	t.Parallel()

	// ChunkedSource refuses Reset without a prior Mark.
	s := NewFrameStream(audiotest.NewChunkedSource(audiotest.Sequential(16)), stereo16, NotSpecified)
	readN(t, s, 8)

	if err := s.Reset(); err == nil {
		t.Error("Reset() without mark error = nil")
	}
	if s.FramePosition() != 2 {
		t.Errorf("FramePosition() = %d, want 2", s.FramePosition())
	}
}

func TestFrameStream_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(16))
	s := NewFrameStream(src, stereo16, NotSpecified)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the source")
	}
}

func TestFrameStream_NestedBoundedView(t *testing.T) {
	t.Parallel()

	inner := NewFrameStream(audiotest.NewChunkedSource(audiotest.Sequential(64), 3), stereo16, NotSpecified)
	outer := NewFrameStream(inner, inner.Format(), 3)

	got := readN(t, outer, 100)
	if !bytes.Equal(got, audiotest.Sequential(12)) {
		t.Errorf("bounded view read %v", got)
	}
	if outer.FramePosition() != 3 || inner.FramePosition() != 3 {
		t.Errorf("positions outer=%d inner=%d, want 3", outer.FramePosition(), inner.FramePosition())
	}
}

func TestFrameStream_PositionConsistency(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChunkedSource(audiotest.Sequential(1000), 5, 2, 7)
	s := NewFrameStream(src, stereo16, NotSpecified)

	var delivered int64
	buf := make([]byte, 13)
	for i := range 30 {
		var (
			n   int64
			err error
		)
		if i%3 == 2 {
			n, err = s.Skip(9)
		} else {
			var m int
			m, err = s.Read(buf)
			n = int64(m)
		}
		delivered += n

		if delivered != s.FramePosition()*4 {
			t.Fatalf("step %d: position %d, delivered %d bytes", i, s.FramePosition(), delivered)
		}
		if err != nil {
			t.Fatalf("step %d: error = %v", i, err)
		}
		if s.pushbackLen >= 4 {
			t.Fatalf("step %d: pushback holds %d bytes", i, s.pushbackLen)
		}
	}
}

// readN reads until n bytes are collected or the stream ends.
func readN(t *testing.T, r io.Reader, n int) []byte {
	t.Helper()

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		m, err := r.Read(buf[:n-len(out)])
		out = append(out, buf[:m]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if m == 0 && n-len(out) < 4 {
			break
		}
	}
	return out
}

func BenchmarkFrameStream_Read(b *testing.B) {
	data := audiotest.Sequential(1 << 16)
	buf := make([]byte, 4096)

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		s := NewFrameStream(NewBytesSource(data), stereo16, NotSpecified)
		for {
			if _, err := s.Read(buf); err != nil {
				break
			}
		}
	}
}
