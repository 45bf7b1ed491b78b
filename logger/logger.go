// SPDX-License-Identifier: MIT
// Package: masseyramanujan/logger

// Package logger builds zerolog loggers with the project's defaults:
// RFC3339 timestamps, console or JSON output, and a component field.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures New.
type Options struct {
	Level     string    // trace|debug|info|warn|error|off; unknown → debug
	Format    string    // console|json; unknown → json
	Component string    // added as "component" when non-empty
	Writer    io.Writer // defaults to os.Stderr
}

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// New returns a logger for opts. It does not touch zerolog globals.
func New(opts Options) Logger {
	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if strings.EqualFold(opts.Format, FormatConsole) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opts.Level)).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}

	return ctx.Logger()
}

// ParseLevel maps a level name to zerolog.Level. Unknown or empty names
// fall back to debug.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.DebugLevel
	}
}
