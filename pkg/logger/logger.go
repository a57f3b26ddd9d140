package logger

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func init() {
	Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Info logs at info level.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
