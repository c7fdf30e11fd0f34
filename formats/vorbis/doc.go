// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into frame-aligned byte streams.
//
// github.com/jfreymuth/oggvorbis produces float samples. They are encoded
// as 16-bit signed little-endian PCM through audio.NewSampleSource, so the
// stream looks like any other integer PCM stream:
//
//	f, _ := os.Open("theme.ogg")
//	stream, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	fmt.Println(stream.Format()) // PCM_SIGNED 44100 Hz, 16 bit, stereo, 4 bytes/frame, little-endian
//
// FrameLength is known when the input is seekable, since oggvorbis then
// reads the final granule position. The stream does not support Mark/Reset.
package vorbis
