// Package xlog is a trimmed structured-logging layer over log/slog, used
// by the registry loader to report skipped or malformed lines without
// pulling in an external logging dependency.
package xlog

import (
	"context"
	"log/slog"
)

// Logger is the minimal logging surface the registry package depends on.
// Every method takes a context so callers can thread cancellation/trace
// values through even though this package does nothing with them itself.
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With returns a derived Logger that always includes attrs.
	With(attrs ...slog.Attr) Logger
}

// Leveler exposes dynamic level control, kept separate from Logger so
// callers that only need to log don't have to care about it.
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel is what Build returns: a Logger that also supports
// runtime level changes.
type LoggerWithLevel interface {
	Logger
	Leveler
}
