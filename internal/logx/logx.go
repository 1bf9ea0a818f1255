// Package logx wraps log/slog for the one structured line each solve
// backend emits per call (backend, node/color counts, outcome, elapsed
// time, correlation ID), optionally tee'd to a rotating file via
// gopkg.in/natefinch/lumberjack.v2. Loggers are values callers construct
// and pass in via solve.WithSlog; there is no package-global singleton.
package logx

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects where a Logger writes.
type Config struct {
	// ConsoleEnabled writes JSON lines to os.Stdout.
	ConsoleEnabled bool

	// FilePath, if non-empty, enables a rotating file sink at that path.
	FilePath       string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// New builds a *slog.Logger per cfg. With neither sink enabled, it falls
// back to a console handler so a misconfigured Logger never silently drops
// output.
func New(cfg Config) *slog.Logger {
	var handlers []slog.Handler

	if cfg.ConsoleEnabled {
		handlers = append(handlers, slog.NewJSONHandler(os.Stdout, nil))
	}

	if cfg.FilePath != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		handlers = append(handlers, slog.NewJSONHandler(file, nil))
	}

	if len(handlers) == 0 {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, nil))
	}
	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}

	return slog.New(multiHandler(handlers))
}

// Printf adapts a *slog.Logger into the Printf-shaped func solve.WithLogger
// accepts, logging at Info level.
func Printf(l *slog.Logger) func(format string, args ...interface{}) {
	return func(format string, args ...interface{}) {
		l.Info(fmt.Sprintf(format, args...))
	}
}
