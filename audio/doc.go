// SPDX-License-Identifier: EPL-2.0

// Package audio provides frame-aligned PCM byte streams and the sources that
// feed them.
//
// # Frame Streams
//
// A FrameStream wraps a ByteSource and never hands out part of a sample frame:
//
//	format := audio.NewPCMFormat(44100, 16, 2, true, false) // 4 bytes per frame
//	stream := audio.NewFrameStream(audio.NewBytesSource(data), format, audio.NotSpecified)
//
//	buf := make([]byte, 10)
//	n, err := stream.Read(buf) // n is 0, 4 or 8, never 10
//
// Requests are truncated to whole frames. When the source delivers a partial
// frame the trailing bytes are carried over and placed in front of the next
// read, so a source that hands out 3 bytes at a time still produces clean
// 4-byte frames.
//
// A stream created with a frame length stops at that many frames regardless
// of how much the source still holds:
//
//	stream := audio.NewFrameStream(src, format, 5)
//	stream.Skip(5 * 4)
//	_, err := stream.Read(buf) // io.EOF
//
// # Sources
//
// ByteSource is the capability set a stream reads from:
//
//	type ByteSource interface {
//	    Read(p []byte) (n int, err error)
//	    Skip(n int64) (int64, error)
//	    Available() (int, error)
//	    Close() error
//	    Mark(readLimit int)
//	    Reset() error
//	    MarkSupported() bool
//	}
//
// The package ships several implementations:
//   - ReaderSource adapts any io.Reader (NewBytesSource for in-memory data)
//   - LineSource reads a live TargetLine such as a capture device
//   - SampleSource encodes a float Source as 16-bit PCM
//
// A FrameStream is itself a ByteSource, so a bounded view over another stream
// is just another NewFrameStream call.
//
// # Mark and Reset
//
// Mark and Reset delegate to the source and also checkpoint the frame position
// and any carried partial frame:
//
//	stream.Mark(1 << 20)
//	stream.Read(buf)
//	stream.Reset() // FramePosition and the next Read are as before Mark
//
// # Float Samples
//
// Source is the float sample interface used by decoders that produce samples
// in [-1.0, 1.0]. NewPCMReader goes the other way and decodes a PCM
// FrameStream into a Source.
//
// # Error Handling
//
// End of data is io.EOF and is only returned by a Read that delivers no bytes.
// A source that cannot be reconciled into whole frames yields
// ErrStreamAlignment. Errors from the source are returned as they are:
//
//	for {
//	    n, err := stream.Read(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Streams are not safe for concurrent use.
package audio
