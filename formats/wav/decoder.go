// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audframe/audio"
)

// WAVE format tags
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatALaw       = 6
	formatMuLaw      = 7
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// Decode positions r on the data chunk and returns a stream over the raw
// sample bytes, bounded to the chunk's length.
func (Decoder) Decode(r io.Reader) (*audio.FrameStream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := wav.NewDecoder(rs)
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	format, err := streamFormat(dec)
	if err != nil {
		return nil, err
	}

	pcmLen, err := dataChunkSize(rs)
	if err != nil {
		return nil, err
	}
	src, err := pcmSource(rs, dec, pcmLen)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		src.CloseWith(c)
	}

	return audio.NewFrameStream(src, format, pcmLen/int64(format.FrameSize)), nil
}

func streamFormat(dec *wav.Decoder) (audio.Format, error) {
	bits := int(dec.BitDepth)
	channels := int(dec.NumChans)
	if bits < 8 || channels < 1 {
		return audio.Format{}, fmt.Errorf("%d channels, %d bit: %w", channels, bits, ErrUnsupportedWavLayout)
	}

	// 8-bit WAV is unsigned, everything wider is signed
	format := audio.NewPCMFormat(float64(dec.SampleRate), bits, channels, bits > 8, false)

	switch dec.WavAudioFormat {
	case formatPCM, formatExtensible:
	case formatIEEEFloat:
		format.Encoding = audio.PCMFloat
	case formatALaw:
		format.Encoding = audio.ALaw
	case formatMuLaw:
		format.Encoding = audio.ULaw
	default:
		return audio.Format{}, fmt.Errorf("format tag %#x: %w", dec.WavAudioFormat, ErrUnsupportedWavLayout)
	}

	return format, nil
}

// dataChunkSize reads the size field just before the data, where FwdToPCM
// leaves rs. The decoder's PCMLen rounds odd sizes up to the pad byte.
func dataChunkSize(rs io.ReadSeeker) (int64, error) {
	if _, err := rs.Seek(-4, io.SeekCurrent); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	var size uint32
	if err := binary.Read(rs, binary.LittleEndian, &size); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	return int64(size), nil
}

// pcmSource prefers a section reader over the data chunk, which can seek and
// so supports mark/reset cheaply. The chunk reader itself is used otherwise.
func pcmSource(rs io.ReadSeeker, dec *wav.Decoder, pcmLen int64) (*audio.ReaderSource, error) {
	ra, ok := rs.(io.ReaderAt)
	if !ok {
		return audio.NewReaderSource(io.LimitReader(dec.PCMChunk, pcmLen)), nil
	}

	off, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return audio.NewReaderSource(io.NewSectionReader(ra, off, pcmLen)), nil
}
