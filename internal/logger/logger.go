// Package logger builds the zerolog logger used by the command line tools.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type options struct {
	Level  zerolog.Level
	Pretty bool
	Writer io.Writer
}

func newOptions(opts ...Option) *options {
	o := &options{Level: zerolog.InfoLevel}
	for _, opt := range opts {
		opt(o)
	}
	if o.Writer == nil {
		o.Writer = os.Stderr
	}
	return o
}

type Option func(*options)

// Level sets the minimum level written.
func Level(level zerolog.Level) Option {
	return func(o *options) {
		o.Level = level
	}
}

// Pretty switches from JSON lines to zerolog's human readable console format.
func Pretty(pretty bool) Option {
	return func(o *options) {
		o.Pretty = pretty
	}
}

// Writer sets the destination, os.Stderr by default.
func Writer(w io.Writer) Option {
	return func(o *options) {
		o.Writer = w
	}
}

// New returns a logger with timestamps, see the Option functions for the defaults.
func New(opts ...Option) zerolog.Logger {
	o := newOptions(opts...)
	w := o.Writer
	if o.Pretty {
		w = zerolog.ConsoleWriter{Out: o.Writer, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(o.Level).With().Timestamp().Logger()
}

// ParseLevel parses a level name, an empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(name)
}
