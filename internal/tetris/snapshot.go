package tetris

import "github.com/vovakirdan/tetris/internal/core"

// Snapshot is a read-only copy of the game state handed to renderers.
// Coordinates are in visible space: row 0 is the top visible row and cells
// of the current piece still inside the hidden margin are left out.
type Snapshot struct {
	Rows  int
	Cols  int
	Board [][]core.Color // locked cells, Rows x Cols

	Current      []core.Point
	CurrentColor core.Color
	Next         Shape // offsets relative to the preview anchor
	NextColor    core.Color
	HasNext      bool

	Score       int
	FallDelay   int
	Pace        int
	Coefficient int

	State    State
	Paused   bool
	GameOver bool
	Locked   bool // the last step locked a piece; previews need redrawing
}

// Snapshot copies the current state for rendering.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Rows:        e.board.VisibleRows(),
		Cols:        e.board.Width(),
		Board:       e.board.Visible(),
		Score:       e.score,
		FallDelay:   e.fallDelay,
		Pace:        e.pace,
		Coefficient: e.coefficient,
		State:       e.state,
		Paused:      e.state == StatePaused,
		GameOver:    e.state == StateGameOver,
		Locked:      e.lastOutcome == OutcomeLocked,
	}

	if e.current != nil {
		s.CurrentColor = e.current.Color()
		for _, c := range e.current.Cells() {
			if c.Y >= HiddenRows {
				s.Current = append(s.Current, core.Pt(c.X, c.Y-HiddenRows))
			}
		}
	}

	if e.next != nil {
		s.Next = e.next.Offsets()
		s.NextColor = e.next.Color()
		s.HasNext = true
	}
	return s
}

// Composite returns the board with the falling piece painted in.
func (s Snapshot) Composite() [][]core.Color {
	grid := make([][]core.Color, len(s.Board))
	for y, row := range s.Board {
		grid[y] = append([]core.Color(nil), row...)
	}
	for _, c := range s.Current {
		if c.Y >= 0 && c.Y < len(grid) && c.X >= 0 && c.X < len(grid[c.Y]) {
			grid[c.Y][c.X] = s.CurrentColor
		}
	}
	return grid
}
