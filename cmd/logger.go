package cmd

import (
	"io"
	"log/slog"
)

// NewLogger returns the JSON logger shared by every component.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
