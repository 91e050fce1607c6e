// Package logging configures the process-wide structured logger.
//
// Logs go to stderr so they never mix with a report written to stdout.
// The level comes from the LOG_LEVEL environment variable unless the caller
// overrides it (e.g. with --debug).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel is the environment variable holding the default log level.
const EnvLogLevel = "LOG_LEVEL"

// Options configures the default logger.
type Options struct {
	// Module and Version are attached to every record.
	Module  string
	Version string
	// Level overrides EnvLogLevel when non-empty.
	Level string
	// JSON selects the JSON handler instead of the text handler.
	JSON bool
	// Output defaults to os.Stderr.
	Output io.Writer
	// Attrs are extra attributes attached to every record.
	Attrs []any
}

// ParseLogLevel converts a level name to a slog.Level. Unknown names map to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger from opts.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := opts.Level
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLogLevel(level),
		AddSource: ParseLogLevel(level) == slog.LevelDebug,
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	attrs := []any{}
	if opts.Module != "" {
		attrs = append(attrs, slog.String("module", opts.Module))
	}
	if opts.Version != "" {
		attrs = append(attrs, slog.String("version", opts.Version))
	}
	attrs = append(attrs, opts.Attrs...)

	return slog.New(handler).With(attrs...)
}

// SetDefault builds a logger from opts and installs it as the slog default.
func SetDefault(opts Options) *slog.Logger {
	logger := New(opts)
	slog.SetDefault(logger)
	return logger
}
