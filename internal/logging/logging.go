// Package logging provides structured diagnostics for tagfix using zerolog.
//
// User-facing output (tag lines, dumps, update notices) is printed by the
// cli and tui packages. This logger carries the machine-readable side:
// per-file failures, chosen encodings, timing.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger

func init() {
	// JSON on stderr, warnings and above until Init is called
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger = &l
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// Init configures the global logger on stderr.
// If debug is true, sets log level to Debug.
// If human is true, uses a human-friendly console writer.
func Init(debug bool, human bool) {
	InitTo(os.Stderr, debug, human)
}

// InitTo is Init with an explicit destination.
func InitTo(w io.Writer, debug bool, human bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var output zerolog.LevelWriter
	if human {
		output = zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
		}}
	} else {
		output = zerolog.LevelWriterAdapter{Writer: w}
	}

	l := zerolog.New(output).With().Timestamp().Logger()
	logger = &l
}

// Discard silences the global logger. The TUI owns the terminal, so stray
// log lines would corrupt the screen.
func Discard() {
	l := zerolog.Nop()
	logger = &l
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// WithPhase returns a logger with the phase field set.
func WithPhase(phase string) zerolog.Logger {
	return logger.With().Str("phase", phase).Logger()
}

// WithFile returns a logger with the file field set.
func WithFile(path string) zerolog.Logger {
	return logger.With().Str("file", path).Logger()
}

// SetLogger allows overriding the global logger (useful for testing).
func SetLogger(l zerolog.Logger) {
	logger = &l
}
