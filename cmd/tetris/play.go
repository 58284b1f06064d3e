package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/controller"
	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/platform/tui"
	"github.com/vovakirdan/tetris/internal/registry"
	"github.com/vovakirdan/tetris/internal/tetris"
)

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	// Arguments are fine; later failures are not usage errors.
	cmd.SilenceUsage = true

	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(settings.Log, cfg.Backend)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Debug("settings loaded", "source", source)

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if cfg.Backend == tui.ID {
		if err := probeTerminal(cfg, settings); err != nil {
			return err
		}
	}

	engine, err := tetris.New(cfg.Rows, cfg.Cols, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	renderer, err := registry.Create(cfg.Backend, cfg, settings)
	if err != nil {
		return err
	}

	ctrl := controller.New(engine, renderer, controller.WithLogger(logger))
	logger.Info("starting", "backend", cfg.Backend, "rows", cfg.Rows, "cols", cfg.Cols, "seed", cfg.Seed)

	var runErr error
	if host, ok := renderer.(registry.Host); ok {
		runErr = host.Host(ctrl.Run)
	} else {
		runErr = ctrl.Run()
	}

	if err := renderer.Teardown(); err != nil {
		logger.Warn("teardown failed", "error", err)
		runErr = errors.Join(runErr, err)
	}
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		return runErr
	}
	logger.Info("bye", "score", engine.Score())
	return nil
}

// probeTerminal makes sure the terminal backend has a terminal to draw on
// and warns when it is smaller than the layout.
func probeTerminal(cfg core.RuntimeConfig, settings config.Settings) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("the %s backend needs a terminal on stdout", tui.ID)
	}

	layout := tui.NewLayout(cfg.Rows, cfg.Cols, settings.TUI.CellWidth)
	needW, needH := layout.MinSize()
	if w, h, err := term.GetSize(fd); err == nil && (w < needW || h < needH) {
		log.Warn("terminal is smaller than the playfield; resize it to see the whole board",
			"have", fmt.Sprintf("%dx%d", w, h),
			"need", fmt.Sprintf("%dx%d", needW, needH))
	}
	return nil
}
