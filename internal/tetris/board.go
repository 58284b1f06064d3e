package tetris

import (
	"github.com/vovakirdan/tetris/internal/core"
)

// HiddenRows is the number of rows above the visible field. A new piece
// spawns there, so a spawn on top of the stack shows up as an occupied top
// row before the player ever sees the overlap.
const HiddenRows = 1

// Board is the playing field: a matrix of colors where the background
// color marks an empty cell. Only locked pieces are ever written into it.
type Board struct {
	bounds core.Rect
	cells  [][]core.Color
}

// NewBoard allocates an empty board with the given visible rows and columns.
func NewBoard(rows, cols int) *Board {
	b := &Board{bounds: core.NewRect(0, 0, cols, rows+HiddenRows)}
	b.cells = make([][]core.Color, b.bounds.H)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, cols)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.bounds.W
}

// Height returns the number of rows, hidden margin included.
func (b *Board) Height() int {
	return b.bounds.H
}

// VisibleRows returns the number of rows shown to the player.
func (b *Board) VisibleRows() int {
	return b.bounds.H - HiddenRows
}

// InBounds reports whether (x, y) is a cell of the board.
func (b *Board) InBounds(x, y int) bool {
	return b.bounds.Contains(x, y)
}

// Cell returns the color at (x, y); background outside the board.
func (b *Board) Cell(x, y int) core.Color {
	if !b.InBounds(x, y) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Occupied reports whether (x, y) holds a locked cell.
func (b *Board) Occupied(x, y int) bool {
	return !b.Cell(x, y).IsBackground()
}

// Lock writes the piece's color into its cells. The caller has already
// established that the piece rests at a valid position.
func (b *Board) Lock(p *Piece) {
	for _, c := range p.Cells() {
		if b.InBounds(c.X, c.Y) {
			b.cells[c.Y][c.X] = p.Color()
		}
	}
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.Height() {
		return false
	}
	for _, c := range b.cells[y] {
		if c.IsBackground() {
			return false
		}
	}
	return true
}

// ClearRow removes row y by shifting every row above it down by one.
// Row 0 becomes background.
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= b.Height() {
		return
	}
	for ; y > 0; y-- {
		copy(b.cells[y], b.cells[y-1])
	}
	clear(b.cells[0])
}

// ClearFullRows scans the visible rows top to bottom, clears every full
// row and returns how many were cleared. A cleared row takes the contents
// of the row above, which was already checked, so the scan never revisits
// an index.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := HiddenRows; y < b.Height(); y++ {
		if b.RowFull(y) {
			b.ClearRow(y)
			cleared++
		}
	}
	return cleared
}

// TopRowOccupied reports whether any cell of the top row is occupied.
// Pieces only get there when the stack has reached the spawn area, which
// ends the game.
func (b *Board) TopRowOccupied() bool {
	for _, c := range b.cells[0] {
		if !c.IsBackground() {
			return true
		}
	}
	return false
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Visible returns a copy of the visible rows, top row first.
func (b *Board) Visible() [][]core.Color {
	rows := make([][]core.Color, b.VisibleRows())
	for i := range rows {
		rows[i] = append([]core.Color(nil), b.cells[i+HiddenRows]...)
	}
	return rows
}
