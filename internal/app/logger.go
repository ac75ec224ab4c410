package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abhisek/vocabquiz/internal/config"
)

// NewLogger creates a *slog.Logger writing to w and sets it as the default
// logger via slog.SetDefault.
//
// Format "json" produces JSON lines; anything else produces text with
// source info. Level is one of debug, info, warn, error (case-insensitive)
// and defaults to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// OpenLogOutput picks the log destination. A configured file is opened for
// append. Otherwise interactive runs discard logs so they do not tear the
// alt screen, and plain runs log to stderr. The returned close func is
// never nil.
func OpenLogOutput(cfg config.LogConfig, interactive bool) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		return f, f.Close, nil
	}
	if interactive {
		return io.Discard, noop, nil
	}
	return os.Stderr, noop, nil
}

// TerminalLogConfig adjusts cfg for where logs end up. Plain runs without
// log.file share stderr with the quiz prompts, so info is raised to warn.
// An explicit debug, warn or error level is kept.
func TerminalLogConfig(cfg config.LogConfig, interactive bool) config.LogConfig {
	if interactive || cfg.File != "" {
		return cfg
	}
	if parseLevel(cfg.Level) == slog.LevelInfo {
		cfg.Level = "warn"
	}
	return cfg
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
