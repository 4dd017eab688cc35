// Package logging constructs the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options select verbosity and output shape.
type Options struct {
	Verbose bool // include debug events
	Quiet   bool // errors only; wins over Verbose
	JSON    bool // machine-readable output, used by serve
	Output  io.Writer
}

// New builds a logger. Human-readable console output goes to stderr by
// default so command output on stdout stays pipeable.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	if opts.Quiet {
		level = zerolog.ErrorLevel
	}

	var w io.Writer = out
	if !opts.JSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
