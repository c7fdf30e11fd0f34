// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"
)

// NotSpecified marks a Format field, or a frame length, as unknown.
const NotSpecified = -1

// Encoding names the way samples are represented in a byte stream.
type Encoding string

const (
	PCMSigned   Encoding = "PCM_SIGNED"
	PCMUnsigned Encoding = "PCM_UNSIGNED"
	PCMFloat    Encoding = "PCM_FLOAT"
	ULaw        Encoding = "ULAW"
	ALaw        Encoding = "ALAW"
)

// Format describes the layout of the bytes carried by a FrameStream.
// Integer fields and rates may hold NotSpecified.
type Format struct {
	Encoding         Encoding
	SampleRate       float64
	SampleSizeInBits int
	Channels         int
	FrameSize        int // bytes per frame
	FrameRate        float64
	BigEndian        bool
}

// NewPCMFormat builds a linear PCM format with one sample per channel per frame.
func NewPCMFormat(sampleRate float64, sampleSizeInBits, channels int, signed, bigEndian bool) Format {
	enc := PCMUnsigned
	if signed {
		enc = PCMSigned
	}

	frameSize := NotSpecified
	if sampleSizeInBits != NotSpecified && channels != NotSpecified {
		frameSize = ((sampleSizeInBits + 7) / 8) * channels
	}

	return Format{
		Encoding:         enc,
		SampleRate:       sampleRate,
		SampleSizeInBits: sampleSizeInBits,
		Channels:         channels,
		FrameSize:        frameSize,
		FrameRate:        sampleRate,
		BigEndian:        bigEndian,
	}
}

// BytesPerSample is the storage width of a single sample, 0 when unknown.
func (f Format) BytesPerSample() int {
	if f.SampleSizeInBits <= 0 {
		return 0
	}
	return (f.SampleSizeInBits + 7) / 8
}

// Matches reports whether f can stand in for other. NotSpecified fields on
// other act as wildcards. Endianness only matters for multi-byte samples.
func (f Format) Matches(other Format) bool {
	if f.Encoding != other.Encoding {
		return false
	}
	if other.Channels != NotSpecified && other.Channels != f.Channels {
		return false
	}
	if other.SampleRate != NotSpecified && other.SampleRate != f.SampleRate {
		return false
	}
	if other.SampleSizeInBits != NotSpecified && other.SampleSizeInBits != f.SampleSizeInBits {
		return false
	}
	if other.FrameSize != NotSpecified && other.FrameSize != f.FrameSize {
		return false
	}
	if other.FrameRate != NotSpecified && other.FrameRate != f.FrameRate {
		return false
	}
	if f.SampleSizeInBits > 8 && f.BigEndian != other.BigEndian {
		return false
	}
	return true
}

func (f Format) String() string {
	var sb strings.Builder

	sb.WriteString(string(f.Encoding))

	if f.SampleRate == NotSpecified {
		sb.WriteString(" unknown sample rate,")
	} else {
		fmt.Fprintf(&sb, " %g Hz,", f.SampleRate)
	}

	if f.SampleSizeInBits == NotSpecified {
		sb.WriteString(" unknown bits per sample,")
	} else {
		fmt.Fprintf(&sb, " %d bit,", f.SampleSizeInBits)
	}

	switch f.Channels {
	case 1:
		sb.WriteString(" mono,")
	case 2:
		sb.WriteString(" stereo,")
	case NotSpecified:
		sb.WriteString(" unknown number of channels,")
	default:
		fmt.Fprintf(&sb, " %d channels,", f.Channels)
	}

	if f.FrameSize == NotSpecified {
		sb.WriteString(" unknown frame size")
	} else {
		fmt.Fprintf(&sb, " %d bytes/frame", f.FrameSize)
	}

	if f.SampleSizeInBits > 8 {
		if f.BigEndian {
			sb.WriteString(", big-endian")
		} else {
			sb.WriteString(", little-endian")
		}
	}

	return sb.String()
}
