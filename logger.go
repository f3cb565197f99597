package rawkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rawkit-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithComponent tags every record with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// LogAllocFailure logs an allocation that could not be satisfied.
// The allocator aborts right after this call.
func (l *Logger) LogAllocFailure(ctx context.Context, size, align uintptr, err error) {
	l.ErrorContext(ctx, "allocation failed",
		"size", size,
		"align", align,
		"error", err,
	)
}

// LogDoubleFree logs a free of an address the allocator does not own.
func (l *Logger) LogDoubleFree(ctx context.Context, addr uintptr, size uintptr) {
	l.ErrorContext(ctx, "free of unowned address",
		"addr", addr,
		"size", size,
	)
}

// LogLeak logs allocations still live when a leak check runs.
func (l *Logger) LogLeak(ctx context.Context, liveAllocs, liveBytes int64) {
	if liveAllocs == 0 {
		l.DebugContext(ctx, "leak check passed")
		return
	}
	l.WarnContext(ctx, "live allocations remain",
		"allocs", liveAllocs,
		"bytes", liveBytes,
	)
}

// LogResize logs a buffer reallocation.
func (l *Logger) LogResize(ctx context.Context, oldCap, newCap, length int, err error) {
	if err != nil {
		l.DebugContext(ctx, "resize rejected",
			"old_capacity", oldCap,
			"new_capacity", newCap,
			"length", length,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "resize completed",
		"old_capacity", oldCap,
		"new_capacity", newCap,
		"length", length,
	)
}
