package scengo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithGrid adds a source grid index field to the logger.
func (l *Logger) WithGrid(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("grid", index),
	}
}

// LogExtract logs one grid extraction.
func (l *Logger) LogExtract(ctx context.Context, gridIndex, objects int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "extraction failed",
			"grid", gridIndex,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "extraction completed",
			"grid", gridIndex,
			"objects", objects,
		)
	}
}

// LogCluster logs one clustering run.
func (l *Logger) LogCluster(ctx context.Context, k, objects, iterations int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"k", k,
			"objects", objects,
			"error", err,
		)
	} else if !converged {
		l.WarnContext(ctx, "clustering hit iteration bound",
			"k", k,
			"objects", objects,
			"iterations", iterations,
		)
	} else {
		l.DebugContext(ctx, "clustering completed",
			"k", k,
			"objects", objects,
			"iterations", iterations,
		)
	}
}

// LogSweep logs a k sweep.
func (l *Logger) LogSweep(ctx context.Context, runs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"runs", runs,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"runs", runs,
		)
	}
}
