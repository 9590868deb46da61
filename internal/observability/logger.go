// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability builds the structured logger used across the CLI.
package observability

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/elsevier-search/pkg/types"
)

// NewLogger returns a zerolog logger writing to w. Format "console" (or
// "pretty") selects human-readable output; anything else is JSON lines.
func NewLogger(cfg types.LoggingConfig, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	switch strings.ToLower(cfg.Format) {
	case "console", "pretty":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(cfg.Level))
}

// ParseLevel converts a level name to a zerolog.Level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
