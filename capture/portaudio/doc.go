// SPDX-License-Identifier: EPL-2.0

// Package portaudio captures audio from the default input device through
// github.com/gordonklaus/portaudio.
//
// A Line implements audio.TargetLine and is normally wrapped in a stream:
//
//	line, err := portaudio.Open(portaudio.Config{SampleRate: 16000, Channels: 1})
//	if err != nil {
//	    // Handle error
//	}
//	if err := line.Start(); err != nil {
//	    // Handle error
//	}
//
//	stream := audio.NewLineStream(line)
//	defer stream.Close() // flushes, stops and closes the line
//
// Reads block until PortAudio delivers the next buffer. Buffers that arrive
// while the queue is full are dropped and counted by Dropped.
//
// Open initializes PortAudio and Close terminates it, so the two calls must
// be balanced.
package portaudio
