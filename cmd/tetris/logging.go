package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/platform/tui"
)

// newLogger builds the game logger. Flags win over the settings file.
// Without a log file the terminal backend logs nowhere, since the
// alternate screen owns the terminal.
func newLogger(settings config.LogSettings, backend string) (*log.Logger, io.Closer, error) {
	level := settings.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path := settings.File
	if flagLogFile != "" {
		path = flagLogFile
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	case backend == tui.ID:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           lvl,
	})
	return logger, closer, nil
}

// nopCloser stands in for the log file when logging goes to a stream the
// program does not own.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
