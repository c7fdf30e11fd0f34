// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/ik5/audframe/audio"
	"github.com/ik5/audframe/internal/logging"
)

type options struct {
	ConfigPath      string
	Skip            time.Duration
	Frames          int64
	Capture         time.Duration
	SampleRate      float64
	Channels        int
	FramesPerBuffer int
	Peak            bool
	LogLevel        zerolog.Level
}

func defaultOptions() options {
	return options{
		Frames:          audio.NotSpecified,
		SampleRate:      44100,
		Channels:        1,
		FramesPerBuffer: 512,
		LogLevel:        zerolog.InfoLevel,
	}
}

type fileConfig struct {
	Skip            string  `toml:"skip"`
	Frames          int64   `toml:"frames"`
	Capture         string  `toml:"capture"`
	SampleRate      float64 `toml:"sample_rate"`
	Channels        int     `toml:"channels"`
	FramesPerBuffer int     `toml:"frames_per_buffer"`
	Peak            bool    `toml:"peak"`
	LogLevel        string  `toml:"log_level"`
}

// loadConfig applies the keys present in the TOML file at path on top of opts.
func loadConfig(path string, opts options) (options, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return options{}, fmt.Errorf("load framecat config: %w", err)
	}

	if meta.IsDefined("skip") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Skip))
		if err != nil {
			return options{}, fmt.Errorf("parse skip: %w", err)
		}
		opts.Skip = d
	}

	if meta.IsDefined("frames") {
		opts.Frames = raw.Frames
	}

	if meta.IsDefined("capture") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Capture))
		if err != nil {
			return options{}, fmt.Errorf("parse capture: %w", err)
		}
		opts.Capture = d
	}

	if meta.IsDefined("sample_rate") {
		opts.SampleRate = raw.SampleRate
	}

	if meta.IsDefined("channels") {
		opts.Channels = raw.Channels
	}

	if meta.IsDefined("frames_per_buffer") {
		opts.FramesPerBuffer = raw.FramesPerBuffer
	}

	if meta.IsDefined("peak") {
		opts.Peak = raw.Peak
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return options{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		opts.LogLevel = lvl
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return options{}, fmt.Errorf("load framecat config: unknown key %q", undecoded[0].String())
	}

	return opts, nil
}

// parseArgs resolves options from defaults, then the config file, then the
// flags that were set explicitly.
func parseArgs(args []string) (options, []string, error) {
	fs := flag.NewFlagSet("framecat", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: framecat [flags] <input> <output.wav>\n       framecat -capture 5s [flags] <output.wav>\n")
		fs.PrintDefaults()
	}

	def := defaultOptions()
	var flagOpts options
	var logLevel string
	fs.StringVar(&flagOpts.ConfigPath, "config", "", "TOML config file")
	fs.DurationVar(&flagOpts.Skip, "skip", 0, "skip this much audio before copying")
	fs.Int64Var(&flagOpts.Frames, "frames", def.Frames, "copy at most this many frames (-1 for all)")
	fs.DurationVar(&flagOpts.Capture, "capture", 0, "record this long from the default input device")
	fs.Float64Var(&flagOpts.SampleRate, "rate", def.SampleRate, "capture sample rate in Hz")
	fs.IntVar(&flagOpts.Channels, "channels", def.Channels, "capture channel count")
	fs.IntVar(&flagOpts.FramesPerBuffer, "buffer", def.FramesPerBuffer, "capture frames per device buffer")
	fs.BoolVar(&flagOpts.Peak, "peak", false, "report the peak level before copying")
	fs.StringVar(&logLevel, "log-level", "", "trace, debug, info, warn, error or off")

	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	opts := def
	if flagOpts.ConfigPath != "" {
		var err error
		if opts, err = loadConfig(flagOpts.ConfigPath, opts); err != nil {
			return options{}, nil, err
		}
		opts.ConfigPath = flagOpts.ConfigPath
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "skip":
			opts.Skip = flagOpts.Skip
		case "frames":
			opts.Frames = flagOpts.Frames
		case "capture":
			opts.Capture = flagOpts.Capture
		case "rate":
			opts.SampleRate = flagOpts.SampleRate
		case "channels":
			opts.Channels = flagOpts.Channels
		case "buffer":
			opts.FramesPerBuffer = flagOpts.FramesPerBuffer
		case "peak":
			opts.Peak = flagOpts.Peak
		case "log-level":
			lvl, ok := logging.ParseLevel(logLevel)
			if !ok {
				err = fmt.Errorf("unknown log level %q", logLevel)
				return
			}
			opts.LogLevel = lvl
		}
	})
	if err != nil {
		return options{}, nil, err
	}

	return opts, fs.Args(), nil
}
