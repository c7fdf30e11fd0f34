// SPDX-License-Identifier: EPL-2.0

package audframe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/formats/aiff"
	"github.com/ik5/audframe/formats/mp3"
	"github.com/ik5/audframe/formats/vorbis"
	"github.com/ik5/audframe/formats/wav"
)

// DefaultRegistry returns a new registry holding every decoder shipped
// with this module, keyed by lowercase format name and common extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	return reg
}

var defaultRegistry = DefaultRegistry()

// Open decodes r with the decoder registered for format. If r is an
// io.Closer, closing the stream closes r.
func Open(r io.Reader, format string) (*audio.FrameStream, error) {
	key := strings.ToLower(strings.TrimPrefix(format, "."))
	dec, ok := defaultRegistry.Get(key)
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	s, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return s, nil
}

// OpenFile opens path and decodes it by extension. The file is closed with
// the stream, or immediately if decoding fails.
func OpenFile(path string) (*audio.FrameStream, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%s: no file extension: %w", path, ErrUnsupportedFormat)
	}
	if _, ok := defaultRegistry.Get(strings.ToLower(ext[1:])); !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s, err := Open(f, ext)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
