package rawvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with rawvec-specific helpers.
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
// This is the default for every Vector.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName adds a name field, useful to tell several vectors apart.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogGrow logs a buffer replacement.
func (l *Logger) LogGrow(oldCap, newCap, size int, err error) {
	if err != nil {
		l.LogAttrs(context.Background(), slog.LevelWarn, "grow failed",
			slog.Int("old_capacity", oldCap),
			slog.Int("new_capacity", newCap),
			slog.Int("size", size),
			slog.Any("error", err),
		)
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "grow completed",
		slog.Int("old_capacity", oldCap),
		slog.Int("new_capacity", newCap),
		slog.Int("size", size),
	)
}

// LogRollback logs an abandoned relocation.
func (l *Logger) LogRollback(newCap, constructed int, err error) {
	l.LogAttrs(context.Background(), slog.LevelWarn, "relocation rolled back",
		slog.Int("new_capacity", newCap),
		slog.Int("destroyed", constructed),
		slog.Any("error", err),
	)
}
