package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/registry"
)

// parseArgs turns "<backend> <rows> <columns>" into a runtime config.
func parseArgs(args []string) (core.RuntimeConfig, error) {
	if len(args) != 3 {
		return core.RuntimeConfig{}, fmt.Errorf("expected 3 arguments, got %d", len(args))
	}

	backend := args[0]
	if !registry.Exists(backend) {
		return core.RuntimeConfig{}, fmt.Errorf("unknown backend %q (available: %s)",
			backend, strings.Join(registry.IDs(), ", "))
	}

	rows, err := strconv.Atoi(args[1])
	if err != nil {
		return core.RuntimeConfig{}, fmt.Errorf("rows must be a number, got %q", args[1])
	}
	cols, err := strconv.Atoi(args[2])
	if err != nil {
		return core.RuntimeConfig{}, fmt.Errorf("columns must be a number, got %q", args[2])
	}

	cfg := core.RuntimeConfig{Backend: backend, Rows: rows, Cols: cols}
	if err := cfg.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	return cfg, nil
}

func validateArgs(_ *cobra.Command, args []string) error {
	_, err := parseArgs(args)
	return err
}
