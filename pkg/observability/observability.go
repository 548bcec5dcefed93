// Package observability provides structured logging and metrics shared by
// cmd/hyply and cmd/hyply-train.
package observability

import (
	"io"
	"log/slog"
	"os"
)

// AppMode identifies which binary/subcommand produced a log record.
type AppMode string

const (
	// ModeDetect is a single-file `hyply` detection run.
	ModeDetect AppMode = "detect"
	// ModeBreakdown is a `hyply -b` directory breakdown run.
	ModeBreakdown AppMode = "breakdown"
	// ModeTrain is a `hyply-train` offline training run.
	ModeTrain AppMode = "train"
)

const defaultServiceName = "hyply"

// logWriter is where NewLogger's handlers write. A package variable (rather
// than a NewLogger parameter) keeps call sites in cmd/hyply and
// cmd/hyply-train simple; tests override it directly.
var logWriter io.Writer = os.Stderr

// NewLogger builds an slog.Logger writing level-filtered, service-tagged
// records to the process's stderr. format selects "json" or plain text;
// anything else falls back to text.
func NewLogger(level slog.Level, format string, mode AppMode) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(logWriter, opts)
	} else {
		handler = slog.NewTextHandler(logWriter, opts)
	}

	return slog.New(NewServiceHandler(handler, defaultServiceName, mode))
}

// ParseLevel maps a config string to an slog.Level, defaulting to Info for
// anything unrecognized rather than failing startup over a typo.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
