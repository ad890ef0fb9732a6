// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"feedmill.app/internal/config"
)

// InitializeDefaultLogger sets the default slog logger from config.Opts. The
// returned io.Closer is not nil when the logger writes to a file.
func InitializeDefaultLogger() (io.Closer, error) {
	w, closer, err := openLogFile(config.Opts.LogFile())
	if err != nil {
		return nil, err
	}

	h := NewHandler(w, config.Opts.LogFormat(), config.Opts.LogLevel(),
		config.Opts.LogDateTime())
	slog.SetDefault(slog.New(h))
	return closer, nil
}

func openLogFile(logFile string) (io.Writer, io.Closer, error) {
	switch logFile {
	case "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open log file %q: %w", logFile, err)
	}
	return f, f, nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func hideTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// NewHandler returns a slog.Handler writing to w in format: "human", "json"
// or "text".
func NewHandler(w io.Writer, format, level string, logTime bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLogLevel(level)}
	if !logTime {
		opts.ReplaceAttr = hideTime
	}

	switch format {
	case "human":
		return NewHumanTextHandler(w, opts, logTime)
	case "json":
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
