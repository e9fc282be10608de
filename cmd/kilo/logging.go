package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxLogSize is the size above which an existing log is rotated on startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging opens the debug log
// The screen owns stdout and stderr carries the exit diagnostic, so an empty path discards logs
func setupLogging(path string, level slog.Level) (*slog.Logger, *os.File, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	if err := rotateLog(path); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return newLogger(f, level), f, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// rotateLog moves an oversized log aside as <name>-<timestamp><ext>
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".log"
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
