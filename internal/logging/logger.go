// Package logging configures the zerolog logger used for diagnostics.
//
// Diagnostics always go to stderr; stdout carries only the text and status
// messages a user asked for, so it can be piped or redirected safely.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level.
// A nil writer means os.Stderr. noColor strips ANSI escapes from the output.
func New(level string, w io.Writer, noColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.ErrorLevel
	}
	if w == nil {
		w = os.Stderr
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
