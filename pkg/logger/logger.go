package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu  sync.RWMutex
	log = slog.New(slog.NewTextHandler(os.Stdout, nil))
)

// Init configures the global logger with the given level.
func Init(level slog.Level) {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	mu.Lock()
	log = slog.New(handler)
	mu.Unlock()
}

// ParseLevel converts a string to a slog.Level. Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}
