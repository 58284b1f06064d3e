package tetris

import (
	"fmt"

	"github.com/vovakirdan/tetris/internal/core"
)

// Speed curve and pacing, in milliseconds.
const (
	DelayMax  = 225 // fall delay of a fresh game
	DelayMin  = 45  // fastest fall delay the curve reaches
	DelayStep = 15  // fall delay removed per score tier
	TierSize  = 10  // score points per tier
	PaceStep  = 75  // manual speed adjustment per Up/Down press
	SubTicks  = 5   // loop iterations per gravity step
)

// State is the engine's position in the pause/run/over state machine.
type State int

const (
	StatePaused State = iota // initial "ready" state as well
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome tags what a loop iteration did to the falling piece.
type Outcome int

const (
	OutcomeNone        Outcome = iota // no gravity step this iteration
	OutcomeMoved                      // the piece fell one row
	OutcomeLocked                     // the piece locked and the next one took over
	OutcomeSpawnFailed                // a new piece could not be created; fatal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeLocked:
		return "locked"
	case OutcomeSpawnFailed:
		return "spawn_failed"
	default:
		return "unknown"
	}
}

// StepResult is returned by Engine.Step after each loop iteration.
type StepResult struct {
	Outcome Outcome
	Render  bool // a new frame should be drawn
	Cleared int  // rows cleared by a lock
}

// Engine owns the whole game state. It is not safe for concurrent use:
// the controller drives it from a single goroutine and renderers only get
// Snapshot copies.
type Engine struct {
	rng   Source
	spawn func() (*Piece, error)

	board   *Board
	current *Piece
	next    *Piece

	score       int
	fallDelay   int
	pace        int
	coefficient int

	state       State
	subTick     int
	lastOutcome Outcome
}

// New creates an engine for a rows x cols playfield. The game starts
// paused with two fresh pieces.
func New(rows, cols int, rng Source) (*Engine, error) {
	e := &Engine{
		rng:   rng,
		board: NewBoard(rows, cols),
	}
	e.spawn = func() (*Piece, error) {
		return NewPiece(e.rng, e.board.Width())
	}

	if err := e.reset(); err != nil {
		return nil, fmt.Errorf("tetris: cannot start game: %w", err)
	}
	e.state = StatePaused
	return e, nil
}

// reset brings every piece of game state back to a fresh game.
func (e *Engine) reset() error {
	e.board.Reset()

	current, err := e.spawn()
	if err != nil {
		return err
	}
	next, err := e.spawn()
	if err != nil {
		return err
	}

	e.current = current
	e.next = next
	e.score = 0
	e.fallDelay = DelayMax
	e.pace = DelayMax
	e.coefficient = 1
	e.lastOutcome = OutcomeNone
	return nil
}

// Restart starts a new game and resumes play.
func (e *Engine) Restart() error {
	if err := e.reset(); err != nil {
		return fmt.Errorf("tetris: cannot restart: %w", err)
	}
	e.state = StateRunning
	return nil
}

// HandleEvent applies one input event. Only a failed restart returns an
// error; rejected moves are silently ignored.
func (e *Engine) HandleEvent(ev core.Event) error {
	switch e.state {
	case StatePaused:
		switch ev {
		case core.EventConfirm:
			e.state = StateRunning
		case core.EventRestart:
			return e.Restart()
		}
		return nil

	case StateGameOver:
		if ev == core.EventRestart {
			return e.Restart()
		}
		return nil
	}

	switch ev {
	case core.EventUp:
		// Slower, but never slower than the current tier allows.
		if e.pace+PaceStep <= e.fallDelay {
			e.pace += PaceStep
		}
	case core.EventDown:
		if e.pace-PaceStep >= 0 {
			e.pace -= PaceStep
		}
	case core.EventLeft:
		e.current.Translate(e.board, -1)
	case core.EventRight:
		e.current.Translate(e.board, 1)
	case core.EventRotate:
		e.current.Rotate(e.board)
	case core.EventConfirm:
		e.state = StatePaused
	}
	return nil
}

// Step runs one loop iteration: the event, the game-over check, and on
// every SubTicks-th call a gravity step plus a render request.
func (e *Engine) Step(ev core.Event) StepResult {
	var res StepResult

	if err := e.HandleEvent(ev); err != nil {
		res.Outcome = OutcomeSpawnFailed
		e.lastOutcome = res.Outcome
		return res
	}

	if e.board.TopRowOccupied() {
		e.state = StateGameOver
	}

	if e.subTick >= SubTicks {
		if e.state == StateRunning {
			res.Outcome, res.Cleared = e.Gravity()
		}
		res.Render = true
		e.subTick = 0
	}
	e.subTick++

	e.lastOutcome = res.Outcome
	return res
}

// Gravity drops the current piece by one row, or locks it when it cannot
// fall. A lock clears full rows, scores them, promotes the next piece and
// draws a new one; the manual pace snaps back to the tier's fall delay.
func (e *Engine) Gravity() (Outcome, int) {
	if !e.current.Colliding(e.board) {
		e.current.Advance()
		return OutcomeMoved, 0
	}

	e.board.Lock(e.current)
	cleared := e.clearLines()

	e.current = e.next
	next, err := e.spawn()
	if err != nil {
		e.next = nil
		return OutcomeSpawnFailed, cleared
	}
	e.next = next
	e.pace = e.fallDelay
	return OutcomeLocked, cleared
}

// clearLines clears full rows, scores them at the current coefficient and
// moves the speed curve along. The curve stops once the floor is reached.
func (e *Engine) clearLines() int {
	cleared := e.board.ClearFullRows()
	e.score += e.coefficient * cleared

	if e.fallDelay > DelayMin {
		tier := e.score/TierSize + 1
		e.fallDelay = core.Clamp(e.fallDelay-DelayStep*(tier-e.coefficient), DelayMin, DelayMax)
		e.coefficient = tier
	}
	return cleared
}

// Board returns the playing field. Callers must not modify it.
func (e *Engine) Board() *Board {
	return e.board
}

// Current returns the falling piece.
func (e *Engine) Current() *Piece {
	return e.current
}

// Next returns the piece that spawns after the current one locks.
// It is nil only after a spawn failure.
func (e *Engine) Next() *Piece {
	return e.next
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// FallDelay returns the tier's fall delay in milliseconds.
func (e *Engine) FallDelay() int {
	return e.fallDelay
}

// Pace returns the manually adjusted fall delay the loop sleeps on.
func (e *Engine) Pace() int {
	return e.pace
}

// Coefficient returns the points scored per cleared row.
func (e *Engine) Coefficient() int {
	return e.coefficient
}

// State returns the state machine position.
func (e *Engine) State() State {
	return e.state
}
