// Released under an MIT license. See LICENSE.

// Package logger configures the structured logger used for diagnostics.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = zerolog.WarnLevel

// New returns a logger that writes human readable lines to w. Every line
// carries the session id so that concurrent sessions can be told apart.
func New(w io.Writer, level string, color bool) (zerolog.Logger, error) {
	l := DefaultLevel

	if level != "" {
		var err error

		l, err = zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level: %w", err)
		}
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !color,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}

			return "????"
		},
	}

	return zerolog.New(cw).Level(l).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger(), nil
}
