// SPDX-License-Identifier: EPL-2.0

package portaudio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	pa "github.com/gordonklaus/portaudio"

	"github.com/ik5/audframe/audio"
)

// Config describes the capture stream to open on the default input device.
type Config struct {
	SampleRate float64
	Channels   int
	// FramesPerBuffer is how many frames PortAudio hands to each callback.
	FramesPerBuffer int
	// QueueDepth is how many callback buffers may wait for a reader before
	// new ones are dropped.
	QueueDepth int
}

func (c Config) withDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = 44100
	}
	if c.Channels <= 0 {
		c.Channels = 1
	}
	if c.FramesPerBuffer <= 0 {
		c.FramesPerBuffer = 512
	}
	if c.QueueDepth <= 0 {
		c.QueueDepth = 16
	}
	return c
}

// stream is the part of *portaudio.Stream a Line drives.
type stream interface {
	Start() error
	Stop() error
	Close() error
}

// Line is a capture line on the default input device. It records 16-bit
// signed little-endian PCM and implements audio.TargetLine.
//
// PortAudio delivers buffers on its own thread; they are queued on a
// channel and drained by Read.
type Line struct {
	format    audio.Format
	stream    stream
	terminate func() error

	chunks  chan []int16
	queued  atomic.Int64
	dropped atomic.Int64

	mu      sync.Mutex
	active  bool
	stopped chan struct{}
	err     error

	pending []byte
	off     int
}

// Open initializes PortAudio and opens, but does not start, an input stream.
func Open(cfg Config) (*Line, error) {
	cfg = cfg.withDefaults()

	if err := pa.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	l := newLine(cfg, nil, pa.Terminate)
	s, err := pa.OpenDefaultStream(cfg.Channels, 0, cfg.SampleRate, cfg.FramesPerBuffer, l.callback)
	if err != nil {
		_ = pa.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}
	l.stream = s
	return l, nil
}

func newLine(cfg Config, s stream, terminate func() error) *Line {
	stopped := make(chan struct{})
	close(stopped)

	return &Line{
		format:    audio.NewPCMFormat(cfg.SampleRate, 16, cfg.Channels, true, false),
		stream:    s,
		terminate: terminate,
		chunks:    make(chan []int16, cfg.QueueDepth),
		stopped:   stopped,
	}
}

// callback runs on the PortAudio thread. It must not block.
func (l *Line) callback(in []int16) {
	// PortAudio reuses its buffer
	chunk := make([]int16, len(in))
	copy(chunk, in)

	select {
	case l.chunks <- chunk:
		l.queued.Add(int64(2 * len(chunk)))
	default:
		l.dropped.Add(int64(len(chunk)))
	}
}

func (l *Line) Format() audio.Format { return l.format }

// Dropped is the number of samples discarded because the queue was full.
func (l *Line) Dropped() int64 { return l.dropped.Load() }

func (l *Line) IsActive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Available counts captured bytes not yet read.
func (l *Line) Available() int {
	return len(l.pending) - l.off + int(l.queued.Load())
}

// Read blocks for the next captured buffer while the line is active. Once
// stopped, it returns what is still queued and then (0, nil).
func (l *Line) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if l.off == len(l.pending) {
		l.mu.Lock()
		stopped := l.stopped
		l.mu.Unlock()

		select {
		case chunk := <-l.chunks:
			l.load(chunk)
		default:
			select {
			case chunk := <-l.chunks:
				l.load(chunk)
			case <-stopped:
				return 0, nil
			}
		}
	}

	n := copy(p, l.pending[l.off:])
	l.off += n
	return n, nil
}

func (l *Line) load(chunk []int16) {
	l.queued.Add(-int64(2 * len(chunk)))

	need := 2 * len(chunk)
	if cap(l.pending) < need {
		l.pending = make([]byte, need)
	}
	l.pending = l.pending[:need]
	for i, v := range chunk {
		binary.LittleEndian.PutUint16(l.pending[2*i:], uint16(v))
	}
	l.off = 0
}

func (l *Line) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active {
		return nil
	}
	if err := l.stream.Start(); err != nil {
		return fmt.Errorf("failed to start audio stream: %w", err)
	}
	l.active = true
	l.stopped = make(chan struct{})
	return nil
}

// Flush discards everything captured but not yet read.
func (l *Line) Flush() {
	l.pending = l.pending[:0]
	l.off = 0
	for {
		select {
		case chunk := <-l.chunks:
			l.queued.Add(-int64(2 * len(chunk)))
		default:
			return
		}
	}
}

// Stop halts capture. A failure is reported by Close.
func (l *Line) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return
	}
	if err := l.stream.Stop(); err != nil {
		l.err = errors.Join(l.err, fmt.Errorf("failed to stop audio stream: %w", err))
	}
	l.active = false
	close(l.stopped)
}

// Close releases the stream and PortAudio itself.
func (l *Line) Close() error {
	l.Stop()

	l.mu.Lock()
	err := l.err
	l.err = nil
	l.mu.Unlock()

	if cerr := l.stream.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("failed to close audio stream: %w", cerr))
	}
	if l.terminate != nil {
		if terr := l.terminate(); terr != nil {
			err = errors.Join(err, terr)
		}
	}
	return err
}

var _ audio.TargetLine = (*Line)(nil)
