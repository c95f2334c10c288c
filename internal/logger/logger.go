package logger

import (
	"log/slog"
	"os"
)

// New builds the process-wide logger writing JSON records to stdout. Every
// record carries the service name for log aggregation.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "paytrack"))
}
