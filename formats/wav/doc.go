// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files as frame-aligned byte streams.
//
// Parsing and writing of the RIFF container is done by github.com/go-audio/wav.
// This package only locates the data chunk and hands its bytes, unchanged,
// to an audio.FrameStream whose frame length is the chunk size divided by
// the block alignment.
//
// # Decoding
//
//	f, _ := os.Open("speech.wav")
//	stream, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close() // also closes f
//
//	buf := make([]byte, 4096)
//	n, err := stream.Read(buf) // n is a multiple of stream.FrameSize()
//
// Integer PCM, IEEE float, A-law and mu-law tags are recognised. The bytes
// are never converted; use audio.NewPCMReader for float samples.
//
// When the input implements io.ReaderAt (files, bytes.Reader) the data chunk
// is exposed through an io.SectionReader, so Mark/Reset are seeks. Inputs
// that cannot seek are read into memory first.
//
// # Encoding
//
// Encode drains a stream of integer PCM into a WAV file:
//
//	out, _ := os.Create("copy.wav")
//	frames, err := wav.Encode(out, stream)
//
// Big-endian input is rewritten as little-endian, which is what WAV expects.
//
// # Errors
//
//   - ErrNotWavFile: missing RIFF/WAVE magic
//   - ErrNoPCMData: no data chunk was found
//   - ErrUnsupportedWavLayout: unknown format tag or channel layout
//   - ErrUnsupportedEncoding: Encode was given a non-integer stream
package wav
