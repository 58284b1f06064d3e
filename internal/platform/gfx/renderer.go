// Package gfx provides the 2D window backend built on ebiten. Ebiten must
// own the main goroutine, so the backend implements registry.Host and runs
// the game loop on a second goroutine.
package gfx

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tetris/internal/config"
	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/registry"
	"github.com/vovakirdan/tetris/internal/tetris"
)

// ID is the backend name used on the command line.
const ID = "gfx"

const eventBuffer = 32

// ErrAlreadyHosted is returned when the window loop is started twice.
var ErrAlreadyHosted = errors.New("gfx: window already running")

func init() {
	registry.Register(ID, "2D window (Ebitengine)", func(cfg core.RuntimeConfig, settings config.Settings) (registry.Renderer, error) {
		return New(cfg, settings)
	})
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for window events.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Renderer is the 2D window backend.
type Renderer struct {
	title  string
	layout layout
	colors palette
	keys   []binding
	logger *log.Logger

	events chan core.Event
	quit   atomic.Bool // the window asked to close
	done   atomic.Bool // the game loop has finished
	hosted atomic.Bool

	mu       sync.Mutex
	frame    tetris.Snapshot
	hasFrame bool
}

// New prepares the window. Nothing is shown until Host runs.
func New(cfg core.RuntimeConfig, settings config.Settings, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		title:  settings.GFX.Title,
		layout: newLayout(cfg.Rows, cfg.Cols, settings.GFX.CellSize),
		colors: newPalette(settings.GFX.Palette),
		logger: log.New(io.Discard),
		events: make(chan core.Event, eventBuffer),
	}
	for _, opt := range opts {
		opt(r)
	}

	keys, skipped := bindKeys(settings.Keys)
	if len(keys) == 0 {
		return nil, errors.New("gfx: none of the configured keys exist on this backend")
	}
	for _, name := range skipped {
		r.logger.Warn("key not available in the window backend", "key", name)
	}
	r.keys = keys
	return r, nil
}

// Host opens the window on the calling goroutine and runs the game loop
// on another one. It returns once both have stopped; the game loop's
// error wins over the window's.
func (r *Renderer) Host(run func() error) error {
	if !r.hosted.CompareAndSwap(false, true) {
		return ErrAlreadyHosted
	}

	ebiten.SetWindowSize(r.layout.width, r.layout.height)
	ebiten.SetWindowTitle(r.title)
	ebiten.SetWindowClosingHandled(true)

	loopErr := make(chan error, 1)
	go func() {
		err := run()
		r.done.Store(true)
		loopErr <- err
	}()

	uiErr := ebiten.RunGame(&game{r: r})
	if uiErr != nil {
		r.logger.Error("window stopped", "error", uiErr)
	}
	// Covers a window that failed to open or died underneath us.
	r.quit.Store(true)

	if err := <-loopErr; err != nil {
		return err
	}
	if uiErr != nil {
		return fmt.Errorf("gfx: %w", uiErr)
	}
	return nil
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

// Render stores the snapshot for the next Draw.
func (r *Renderer) Render(s tetris.Snapshot) error {
	r.mu.Lock()
	r.frame = s
	r.hasFrame = true
	r.mu.Unlock()
	return nil
}

// Teardown lets the window close on its next update.
func (r *Renderer) Teardown() error {
	r.done.Store(true)
	return nil
}

// push queues an event from the UI goroutine, dropping it when the game
// loop falls behind.
func (r *Renderer) push(ev core.Event) {
	if ev == core.EventQuit {
		r.quit.Store(true)
		return
	}
	select {
	case r.events <- ev:
	default:
	}
}

// snapshot returns the last frame handed to Render.
func (r *Renderer) snapshot() (tetris.Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame, r.hasFrame
}
