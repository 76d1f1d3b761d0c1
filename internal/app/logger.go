package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/calorie-backend/internal/config"
)

// Attribute keys whose values are masked unless the level is debug.
var secretKeys = map[string]struct{}{
	"code":          {},
	"token":         {},
	"refresh_token": {},
	"id_token":      {},
}

const redacted = "[REDACTED]"

// NewLogger creates a *slog.Logger writing to os.Stderr and sets it as the
// default logger.
//
// Format "json" produces structured output; anything else produces text with
// source locations. Verification codes and tokens are masked in every level
// above debug.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}
	if level > slog.LevelDebug {
		opts.ReplaceAttr = redactSecrets
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if _, ok := secretKeys[a.Key]; ok {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(s string) slog.Level {
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
