// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
)

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}
	return samplesWritten, nil
}

// ChunkedSource serves data in chunks no larger than the configured sizes,
// cycling through them, to exercise callers against short reads.
// It implements audio.ByteSource.
type ChunkedSource struct {
	data   []byte
	pos    int
	chunks []int
	next   int

	// SkipDisabled makes Skip always report 0, as some sources do.
	SkipDisabled bool
	// SkipExtra is added to every successful Skip, simulating a source that
	// over-reports.
	SkipExtra int64
	// SkipErr, when set, is returned by every Skip.
	SkipErr error
	// EOFWithData returns io.EOF together with the last chunk.
	EOFWithData bool
	// Err, when set, is returned by every Read once pos reaches ErrAt.
	Err   error
	ErrAt int

	NoMark bool

	markPos  int
	marked   bool
	closed   bool
	reads    int
	lastMark int
}

// NewChunkedSource returns a source over data. With no chunk sizes every read
// is served in full.
func NewChunkedSource(data []byte, chunks ...int) *ChunkedSource {
	return &ChunkedSource{data: data, chunks: chunks}
}

// Sequential returns n bytes counting up from 0 and wrapping at 256.
func Sequential(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func (c *ChunkedSource) Read(p []byte) (int, error) {
	c.reads++
	if c.Err != nil && c.pos >= c.ErrAt {
		return 0, c.Err
	}
	if c.pos >= len(c.data) {
		return 0, io.EOF
	}

	n := len(p)
	if len(c.chunks) > 0 {
		n = min(n, c.chunks[c.next%len(c.chunks)])
		c.next++
	}
	n = copy(p[:n], c.data[c.pos:])
	c.pos += n

	if c.EOFWithData && c.pos >= len(c.data) {
		return n, io.EOF
	}
	return n, nil
}

func (c *ChunkedSource) Skip(n int64) (int64, error) {
	if c.SkipErr != nil {
		return 0, c.SkipErr
	}
	if c.SkipDisabled || n <= 0 {
		return 0, nil
	}

	left := int64(len(c.data) - c.pos)
	if left <= 0 {
		return 0, nil
	}
	n = min(n, left)
	c.pos += int(n)
	return n + c.SkipExtra, nil
}

func (c *ChunkedSource) Available() (int, error) { return len(c.data) - c.pos, nil }

func (c *ChunkedSource) MarkSupported() bool { return !c.NoMark }

func (c *ChunkedSource) Mark(readLimit int) {
	if c.NoMark {
		return
	}
	c.markPos = c.pos
	c.marked = true
	c.lastMark = readLimit
}

var errNoMark = errors.New("audiotest: reset without mark")

func (c *ChunkedSource) Reset() error {
	if c.NoMark || !c.marked {
		return errNoMark
	}
	c.pos = c.markPos
	return nil
}

func (c *ChunkedSource) Close() error {
	c.closed = true
	return nil
}

func (c *ChunkedSource) Closed() bool { return c.closed }

// Pos is the number of bytes consumed from the source.
func (c *ChunkedSource) Pos() int { return c.pos }

// Reads counts calls to Read.
func (c *ChunkedSource) Reads() int { return c.reads }

// MarkLimit is the read limit passed to the last Mark.
func (c *ChunkedSource) MarkLimit() int { return c.lastMark }
