package lazyvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with lazyvec-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName tags every record with the vector's name.
// Useful when several side tables share one logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogChunkAllocated logs materialization of a chunk.
func (l *Logger) LogChunkAllocated(chunk, elements int) {
	l.Debug("chunk allocated",
		"chunk", chunk,
		"elements", elements,
	)
}

// LogChunksReleased logs chunks freed by a shrink.
func (l *Logger) LogChunksReleased(chunks, size int) {
	l.Debug("chunks released",
		"count", chunks,
		"size", size,
	)
}

// LogResize logs a change of logical size.
func (l *Logger) LogResize(from, to, capacity int) {
	l.Debug("resize",
		"from", from,
		"to", to,
		"capacity", capacity,
	)
}

// LogAllocationFailed logs a chunk the memory budget refused.
func (l *Logger) LogAllocationFailed(chunk int, bytes int64, err error) {
	l.Error("chunk allocation failed",
		"chunk", chunk,
		"bytes", bytes,
		"error", err,
	)
}
