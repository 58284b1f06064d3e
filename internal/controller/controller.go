// Package controller runs the game loop: poll one input event, advance the
// engine, draw when asked to, then sleep for the current pace.
package controller

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/tetris"
)

// ErrSpawnFailed ends the loop when the engine cannot create a new piece.
var ErrSpawnFailed = errors.New("controller: cannot create a new piece")

// View is the part of a renderer the loop talks to.
// PollInput must not block; it returns core.EventNone when nothing is pending.
type View interface {
	PollInput() core.Event
	Render(s tetris.Snapshot) error
}

// Controller ties an engine to a view.
type Controller struct {
	engine *tetris.Engine
	view   View
	logger *log.Logger
	sleep  func(time.Duration)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSleep replaces time.Sleep, mostly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// New creates a controller. Without WithLogger nothing is logged.
func New(engine *tetris.Engine, view View, opts ...Option) *Controller {
	c := &Controller{
		engine: engine,
		view:   view,
		logger: log.New(io.Discard),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run draws the first frame and iterates until the player quits or a
// fatal error occurs. A quit returns nil.
func (c *Controller) Run() error {
	c.logger.Info("game ready",
		"rows", c.engine.Board().VisibleRows(),
		"cols", c.engine.Board().Width())

	if err := c.render(); err != nil {
		return err
	}

	for {
		done, err := c.Iterate()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Iterate runs a single loop iteration. done is true when the loop should
// stop; err is non-nil only for fatal conditions.
func (c *Controller) Iterate() (done bool, err error) {
	ev := c.view.PollInput()
	if ev == core.EventQuit {
		c.logger.Info("quit", "score", c.engine.Score())
		return true, nil
	}

	prev := c.engine.State()
	res := c.engine.Step(ev)
	c.logStep(prev, ev, res)

	if res.Outcome == tetris.OutcomeSpawnFailed {
		c.logger.Error("game aborted", "error", ErrSpawnFailed)
		return true, ErrSpawnFailed
	}

	if res.Render {
		if err := c.render(); err != nil {
			return true, err
		}
	}

	c.sleep(c.interval())
	return false, nil
}

// interval is the sleep between iterations: a fifth of the pace, so one
// gravity step takes a full pace.
func (c *Controller) interval() time.Duration {
	return time.Duration(c.engine.Pace()/tetris.SubTicks) * time.Millisecond
}

func (c *Controller) render() error {
	if err := c.view.Render(c.engine.Snapshot()); err != nil {
		c.logger.Error("render failed", "error", err)
		return fmt.Errorf("controller: render: %w", err)
	}
	return nil
}

func (c *Controller) logStep(prev tetris.State, ev core.Event, res tetris.StepResult) {
	now := c.engine.State()

	switch {
	case ev == core.EventRestart && now == tetris.StateRunning && prev != tetris.StateRunning:
		c.logger.Info("restart", "from", prev)
	case prev != now && now == tetris.StateGameOver:
		c.logger.Info("game over", "score", c.engine.Score())
	case prev != now:
		c.logger.Debug("state", "from", prev, "to", now)
	}

	if ev == core.EventUp || ev == core.EventDown {
		c.logger.Debug("pace", "pace", c.engine.Pace(), "fall_delay", c.engine.FallDelay())
	}

	if res.Outcome == tetris.OutcomeLocked {
		c.logger.Debug("piece locked", "cleared", res.Cleared)
		if res.Cleared > 0 {
			c.logger.Info("rows cleared",
				"rows", res.Cleared,
				"score", c.engine.Score(),
				"coefficient", c.engine.Coefficient(),
				"fall_delay", c.engine.FallDelay())
		}
	}
}
