// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into frame-aligned byte streams.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always produces
// 16-bit little-endian interleaved stereo. The stream's format reflects
// that, with the sample rate taken from the file:
//
//	f, _ := os.Open("podcast.mp3")
//	stream, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	buf := make([]byte, 4096)
//	n, err := stream.Read(buf) // multiple of 4 bytes
//
// When the input is an io.Seeker, go-mp3 scans it up front and the stream's
// FrameLength is the decoded length. Otherwise it is audio.NotSpecified and
// the stream ends when the decoder does.
//
// Mark/Reset use the decoder's Seek on seekable input and a bounded replay
// buffer otherwise.
package mp3
