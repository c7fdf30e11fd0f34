// SPDX-License-Identifier: EPL-2.0

// Package audframe opens audio files as frame-aligned byte streams.
//
// The heavy lifting lives in the audio package: audio.FrameStream reads,
// skips and marks in whole frames over any audio.ByteSource, optionally
// bounded to a frame length. This package wires the decoders under formats/
// into a registry so callers can go from a path to a stream in one call.
//
// # Supported Formats
//
//   - WAV via formats/wav (raw data chunk, any tag)
//   - AIFF via formats/aiff (signed big-endian PCM)
//   - MP3 via formats/mp3 (16-bit stereo)
//   - Ogg Vorbis via formats/vorbis (16-bit)
//
// # Quick Start
//
//	stream, err := audframe.OpenFile("voice.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close() // closes the file too
//
//	buf := make([]byte, 4096)
//	for {
//	    n, err := stream.Read(buf)
//	    // buf[:n] always holds whole frames
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// Open does the same for any io.Reader when the format key is known:
//
//	stream, err := audframe.Open(resp.Body, "mp3")
//
// # Live Capture
//
// Streams from an input device are built with audio.NewLineStream over a
// line from capture/portaudio. Closing such a stream flushes and stops the
// device before releasing it.
package audframe
