package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/five82/bookgrid/internal/config"
)

// NewLogger returns a logger writing to w: a text handler when w is a
// terminal, JSON otherwise.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// buildLogger picks the log destination. An explicit Logger wins. Otherwise
// a log file (flag, then config) gets debug JSON logs; headless runs without
// one log warnings to stderr; the TUI discards logs so the alt screen stays
// clean.
func buildLogger(opts Options, cfg config.Config, headless bool) (*slog.Logger, func(), error) {
	if opts.Logger != nil {
		return opts.Logger, func() {}, nil
	}

	path := strings.TrimSpace(opts.LogOutput)
	if path == "" {
		path = cfg.LogFile
	}
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, nil, err
		}
		logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return logger, func() { _ = f.Close() }, nil
	}

	if headless {
		return NewLogger(os.Stderr, slog.LevelWarn), func() {}, nil
	}
	return slog.New(slog.DiscardHandler), func() {}, nil
}

func openLogFile(path string) (*os.File, error) {
	resolved, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
