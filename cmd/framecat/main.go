// SPDX-License-Identifier: EPL-2.0

// Command framecat copies an audio file, or a recording from the default
// input device, into a WAV file through a frame-aligned stream.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ik5/audframe"
	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/capture/portaudio"
	"github.com/ik5/audframe/formats/wav"
	"github.com/ik5/audframe/internal/logging"
)

func main() {
	opts, args, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "framecat: %v\n", err)
		os.Exit(2)
	}

	cfg := logging.DefaultConfig(logging.ProfileRuntime)
	cfg.Level = opts.LogLevel
	logging.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, args, log.Logger); err != nil {
		log.Error().Err(err).Msg("framecat failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, args []string, logger zerolog.Logger) error {
	var in, out string
	switch {
	case opts.Capture > 0 && len(args) == 1:
		out = args[0]
	case opts.Capture <= 0 && len(args) == 2:
		in, out = args[0], args[1]
	default:
		return errors.New("usage: framecat [flags] <input> <output.wav> or framecat -capture <duration> <output.wav>")
	}

	var stream *audio.FrameStream
	var err error
	if opts.Capture > 0 {
		stream, err = openCapture(ctx, opts, logger)
	} else {
		stream, err = audframe.OpenFile(in)
	}
	if err != nil {
		return err
	}
	defer stream.Close()

	logger.Info().
		Str("input", inputName(in)).
		Stringer("format", stream.Format()).
		Int64("frames", stream.FrameLength()).
		Msg("opened stream")

	if opts.Skip > 0 {
		if err := skip(stream, opts.Skip, logger); err != nil {
			return err
		}
	}

	if opts.Frames >= 0 {
		// bounded view, relative to the current position
		stream = audio.NewFrameStream(stream, stream.Format(), opts.Frames)
	}

	if opts.Peak {
		if err := reportPeak(stream, logger); err != nil {
			return err
		}
	}

	return writeWAV(out, stream, logger)
}

func inputName(in string) string {
	if in == "" {
		return "default input device"
	}
	return in
}

// openCapture starts a line on the default input device and bounds it to the
// capture duration. An interrupt stops the line early.
func openCapture(ctx context.Context, opts options, logger zerolog.Logger) (*audio.FrameStream, error) {
	line, err := portaudio.Open(portaudio.Config{
		SampleRate:      opts.SampleRate,
		Channels:        opts.Channels,
		FramesPerBuffer: opts.FramesPerBuffer,
	})
	if err != nil {
		return nil, err
	}
	if err := line.Start(); err != nil {
		_ = line.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			logger.Warn().Msg("interrupted, stopping capture")
			line.Stop()
		case <-done:
		}
	}()

	format := line.Format()
	frames := int64(opts.Capture.Seconds() * format.FrameRate)
	return audio.NewFrameStream(&captureSource{
		FrameStream: audio.NewLineStream(line),
		line:        line,
		done:        done,
		logger:      logger,
	}, format, frames), nil
}

// captureSource ends the interrupt watcher and reports dropped buffers when
// the recording is closed.
type captureSource struct {
	*audio.FrameStream
	line   *portaudio.Line
	done   chan struct{}
	logger zerolog.Logger
}

func (c *captureSource) Close() error {
	close(c.done)
	if dropped := c.line.Dropped(); dropped > 0 {
		c.logger.Warn().Int64("samples", dropped).Msg("capture queue overflowed")
	}
	return c.FrameStream.Close()
}

func skip(stream *audio.FrameStream, d time.Duration, logger zerolog.Logger) error {
	rate := stream.Format().FrameRate
	if rate <= 0 {
		return fmt.Errorf("cannot skip %v: unknown frame rate", d)
	}

	want := int64(d.Seconds()*rate) * int64(stream.FrameSize())
	var skipped int64
	for skipped < want {
		n, err := stream.Skip(want - skipped)
		skipped += n
		if err != nil {
			return fmt.Errorf("skipping: %w", err)
		}
		if n == 0 {
			break
		}
	}

	logger.Debug().Int64("bytes", skipped).Int64("frame", stream.FramePosition()).Msg("skipped")
	return nil
}

// reportPeak scans the rest of the stream for its peak level, then rewinds.
func reportPeak(stream *audio.FrameStream, logger zerolog.Logger) error {
	if !stream.MarkSupported() {
		logger.Warn().Msg("stream cannot be rewound, peak not measured")
		return nil
	}

	pcm, err := audio.NewPCMReader(stream)
	if err != nil {
		logger.Warn().Err(err).Msg("peak not measured")
		return nil
	}

	stream.Mark(math.MaxInt32)
	peak, err := measurePeak(pcm)
	if err != nil {
		return fmt.Errorf("measuring peak: %w", err)
	}
	if err := stream.Reset(); err != nil {
		return fmt.Errorf("rewinding after peak: %w", err)
	}

	dbfs := math.Inf(-1)
	if peak > 0 {
		dbfs = 20 * math.Log10(float64(peak))
	}
	logger.Info().Float32("peak", peak).Float64("dbfs", dbfs).Msg("peak level")
	return nil
}

func measurePeak(src audio.Source) (float32, error) {
	buf := make([]float32, src.BufSize()-src.BufSize()%src.Channels())
	var peak float32
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			peak = max(peak, v, -v)
		}
		if errors.Is(err, io.EOF) {
			return peak, nil
		}
		if err != nil {
			return peak, err
		}
		if n == 0 {
			return peak, nil
		}
	}
}

func writeWAV(path string, stream *audio.FrameStream, logger zerolog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	start := time.Now()
	frames, err := wav.Encode(f, stream)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Info().
		Str("output", path).
		Int64("frames", frames).
		Dur("elapsed", time.Since(start)).
		Msg("wrote wav")
	return nil
}
