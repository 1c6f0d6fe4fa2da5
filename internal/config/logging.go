package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OpenLogger builds the application logger. The terminal belongs to the
// UI, so logs go to LogFile as JSON or are discarded when it is empty.
// The returned closer must be closed on exit.
func (c Config) OpenLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	lvl, err := c.Level()
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With("app", "timesmaster"), f, nil
}
