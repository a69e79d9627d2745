// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options control where and how much is logged.
type Options struct {
	Level   string
	NoColor bool
	// File redirects JSON logs to a file. Used while a TUI owns the terminal.
	File string
	// Discard drops all output when File is empty.
	Discard bool
}

// Setup installs the global logger and returns a cleanup function.
func Setup(opts Options) (func(), error) {
	level, levelErr := zerolog.ParseLevel(opts.Level)
	if levelErr != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"

	cleanup := func() {}
	var out io.Writer
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	case opts.Discard:
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    opts.NoColor || os.Getenv("NO_COLOR") != "",
		}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	if levelErr != nil {
		log.Warn().
			Str("provided_level", opts.Level).
			Str("default_level", level.String()).
			Msg("Invalid log level provided, using default")
	}
	return cleanup, nil
}
