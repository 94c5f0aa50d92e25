// Package logging configures the zerolog logger shared by the CLI.
//
// Human-facing runs on a terminal get the console writer; piped or
// redirected runs get plain JSON lines so the log stays machine
// readable. An optional log file receives a copy of the stream.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup builds the application logger. level is a zerolog level name
// ("debug", "info", ...); verbose forces the debug level regardless.
// When logFile is non-empty the file is appended to alongside stderr.
func Setup(level string, verbose bool, logFile string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	var console io.Writer = os.Stderr
	if term.IsTerminal(int(os.Stderr.Fd())) {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	out := console
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), err
		}
		out = zerolog.MultiLevelWriter(console, f)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("app", "runway").Logger(), nil
}
