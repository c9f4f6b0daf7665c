package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const defaultLogLevel = "warn"

// newLogger returns a zerolog logger writing to w at the given level.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: invalid log level %q", ErrInvalidArgument, level)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
