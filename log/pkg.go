package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// DefaultContextProvider returns the context used by logging functions
// that take none.
var DefaultContextProvider = context.TODO

var (
	defaultMu  sync.RWMutex
	defaultLog = Make(os.Stderr)
)

// Config reconfigures the default logger with opts.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// Default returns the default logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLog
}

// DebugContext writes msg at [LevelDebug] to the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().write(ctx, LevelDebug, msg, attrs)
}

// Error writes msg at [LevelError] to the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().write(DefaultContextProvider(), LevelError, msg, attrs)
}
