package slotgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with registry-specific helpers. This provides
// structured logging with consistent field names. Keyed slot reads and
// writes are never logged; only structural operations are.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRegistry adds registry identity fields to the logger.
func (l *Logger) WithRegistry(name, id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("registry", name, "registry_id", id),
	}
}

// LogBuild logs registry construction.
func (l *Logger) LogBuild(schemaName string, slots int, dynamic bool) {
	l.Info("registry built",
		"schema", schemaName,
		"slots", slots,
		"dynamic", dynamic,
	)
}

// LogInsert logs a dynamic insert or a routed store.
func (l *Logger) LogInsert(typeName string, replaced bool, err error) {
	if err != nil {
		l.Error("insert failed",
			"type", typeName,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"type", typeName,
			"replaced", replaced,
		)
	}
}

// LogRemove logs a dynamic remove.
func (l *Logger) LogRemove(typeName string, removed bool, err error) {
	if err != nil {
		l.Error("remove failed",
			"type", typeName,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"type", typeName,
			"removed", removed,
		)
	}
}

// LogReset logs a slot reset.
func (l *Logger) LogReset(count int) {
	l.Debug("slots reset",
		"count", count,
	)
}

// LogIterate logs a finished or abandoned capability iteration.
func (l *Logger) LogIterate(set string, yielded int) {
	l.Debug("iteration completed",
		"set", set,
		"yielded", yielded,
	)
}

// LogClose logs registry teardown.
func (l *Logger) LogClose(cleared int) {
	l.Info("registry closed",
		"dynamic_cleared", cleared,
	)
}
