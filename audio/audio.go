// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// ByteSource is the byte producer underneath a FrameStream.
type ByteSource interface {
	// Read follows io.Reader; io.EOF signals the end of data.
	Read(p []byte) (n int, err error)
	// Skip discards up to n bytes and returns how many were discarded.
	// Zero does not necessarily mean end of data.
	Skip(n int64) (int64, error)
	// Available is the number of bytes readable without blocking.
	Available() (int, error)
	Close() error
	// Mark checkpoints the current position; readLimit bytes may be read
	// before the checkpoint is allowed to lapse.
	Mark(readLimit int)
	// Reset rewinds to the last Mark.
	Reset() error
	MarkSupported() bool
}

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a FrameStream from an encoded input.
type Decoder interface {
	Decode(r io.Reader) (*FrameStream, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	return keys
}
