// Package tui provides the terminal backend. A Bubble Tea program runs on
// its own goroutine; the game loop pushes frames into it and polls key
// events out of it.
package tui

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/registry"
	"github.com/vovakirdan/tetris/internal/tetris"
)

// ID is the backend name used on the command line.
const ID = "tui"

// eventBuffer bounds the key events queued between two loop iterations.
const eventBuffer = 32

// ErrClosed is returned by Render once the terminal program has exited.
var ErrClosed = errors.New("tui: terminal program has exited")

func init() {
	registry.Register(ID, "Terminal (Bubble Tea)", func(cfg core.RuntimeConfig, settings config.Settings) (registry.Renderer, error) {
		return New(cfg, settings, tea.WithAltScreen())
	})
}

// Renderer is the terminal backend.
type Renderer struct {
	program *tea.Program
	events  chan core.Event
	quit    atomic.Bool

	done   chan struct{}
	runErr error

	teardownOnce sync.Once
	teardownErr  error
}

// New starts the Bubble Tea program in the background.
func New(cfg core.RuntimeConfig, settings config.Settings, opts ...tea.ProgramOption) (*Renderer, error) {
	r := &Renderer{
		events: make(chan core.Event, eventBuffer),
		done:   make(chan struct{}),
	}

	model := NewModel(cfg, settings, r.events, &r.quit)
	r.program = tea.NewProgram(model, opts...)

	go r.run()
	return r, nil
}

func (r *Renderer) run() {
	_, err := r.program.Run()
	r.runErr = err
	// Whatever ended the program, the game loop should stop too.
	r.quit.Store(true)
	close(r.done)
}

// PollInput returns the next queued event without blocking.
func (r *Renderer) PollInput() core.Event {
	if r.quit.Load() {
		return core.EventQuit
	}
	select {
	case ev := <-r.events:
		return ev
	default:
		return core.EventNone
	}
}

// Render hands a snapshot to the program for display.
func (r *Renderer) Render(s tetris.Snapshot) error {
	select {
	case <-r.done:
		if r.runErr != nil {
			return fmt.Errorf("%w: %w", ErrClosed, r.runErr)
		}
		return ErrClosed
	default:
	}

	r.program.Send(frameMsg(s))
	return nil
}

// Teardown stops the program and restores the terminal.
func (r *Renderer) Teardown() error {
	r.teardownOnce.Do(func() {
		r.program.Quit()
		<-r.done
		if r.runErr != nil && !errors.Is(r.runErr, tea.ErrProgramKilled) {
			r.teardownErr = fmt.Errorf("tui: %w", r.runErr)
		}
	})
	return r.teardownErr
}
