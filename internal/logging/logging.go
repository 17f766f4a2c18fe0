package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/dmarket/blockchain/internal/config"
)

var globalLogger *slog.Logger

// Configure builds the process-wide logger from the current config.
// Output is structured JSON on stdout, matching every other driver in
// this system.
func Configure() {
	cfg := config.GetConfig()
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("timestamp", a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
		Level: level,
	})
	globalLogger = slog.New(handler).With("component", "dmbc-tx")
}

// GetLogger returns the process-wide logger, configuring it on first use.
func GetLogger() *slog.Logger {
	if globalLogger == nil {
		Configure()
	}
	return globalLogger
}
