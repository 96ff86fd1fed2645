// Package logging holds the process-wide zerolog logger. wmplace is a
// one-shot CLI, so log output goes to stderr and stdout stays clean for
// command output.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var Logger zerolog.Logger

func init() {
	Logger = newLogger(false)
}

// SetDebug switches the logger between the default warn level and the
// per-stage debug tracing used by --debug.
func SetDebug(debug bool) {
	Logger = newLogger(debug)
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
