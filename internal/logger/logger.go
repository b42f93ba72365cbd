// Package logger builds the zerolog instance used across the tool.
// Diagnostics go to stderr so that command output on stdout stays
// scriptable; an optional rotated log file can be configured.
package logger

import (
	"github.com/rs/zerolog"

	"github.com/bjornmorten/stoat-wh/internal/config"
)

// New creates a logger from the given configuration. When debug is set
// the level is forced down to debug regardless of the configured level.
func New(cfg config.LogConfig, debug bool) (zerolog.Logger, error) {
	builder := NewBuilder().WithConfig(cfg)
	if debug {
		builder = builder.WithLevel(zerolog.DebugLevel)
	}
	return builder.Build()
}
