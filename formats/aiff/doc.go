// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into frame-aligned byte streams.
//
// The container is parsed by github.com/go-audio/aiff. Its integer samples
// are written back out as signed big-endian bytes, so the stream carries
// the same bytes the SSND chunk holds and its audio.Format says so:
//
//	f, _ := os.Open("loop.aif")
//	stream, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
//	fmt.Println(stream.Format())      // PCM_SIGNED 44100 Hz, 16 bit, stereo, 4 bytes/frame, big-endian
//	fmt.Println(stream.FrameLength()) // numSampleFrames from COMM
//
// Sample sizes from 8 to 32 bits are supported. The stream does not support
// Mark/Reset because go-audio's decoder only moves forward.
//
// # Errors
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrUnsupportedAiffLayout: sample size or channel count out of range
package aiff
