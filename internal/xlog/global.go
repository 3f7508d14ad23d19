package xlog

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

var (
	globalLogger atomic.Pointer[LoggerWithLevel]
	globalMu     sync.Mutex
	globalOnce   sync.Once
)

func defaultLogger() LoggerWithLevel {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalOnce.Do(func() {
		logger, err := New().Build()
		if err != nil {
			fallback := &xlogger{handler: slog.NewTextHandler(os.Stderr, nil), levelVar: new(slog.LevelVar)}
			var l LoggerWithLevel = fallback
			globalLogger.Store(&l)
			return
		}
		globalLogger.Store(&logger)
	})
	return *globalLogger.Load()
}

// Default returns the process-wide Logger, building it lazily on first use.
func Default() LoggerWithLevel {
	if l := globalLogger.Load(); l != nil {
		return *l
	}
	return defaultLogger()
}

// SetDefault replaces the process-wide Logger. A nil argument is ignored.
func SetDefault(l LoggerWithLevel) {
	if l == nil {
		return
	}
	globalLogger.Store(&l)
}

func Warn(ctx context.Context, msg string, attrs ...slog.Attr) { Default().Warn(ctx, msg, attrs...) }

func Info(ctx context.Context, msg string, attrs ...slog.Attr) { Default().Info(ctx, msg, attrs...) }
