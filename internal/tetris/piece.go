// Package tetris implements the game-state engine: pieces, the board,
// line clearing, scoring and the speed curve. It has no dependency on any
// renderer; views receive Snapshot copies.
package tetris

import (
	"errors"

	"github.com/vovakirdan/tetris/internal/core"
)

// CellsPerPiece is the number of cells in every tetromino.
const CellsPerPiece = 4

// Shape holds the cell offsets of a tetromino relative to its anchor.
type Shape [CellsPerPiece]core.Point

// shapes lists the seven tetrominoes. Each anchor sits on a cell so a
// rotation never moves the piece far from where the player sees it.
var shapes = [...]Shape{
	{{X: -1, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}, // L
	{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},  // Z
	{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}},  // S
	{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},  // J
	{{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}},  // T
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},   // O
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},   // I
}

// ShapeCount is the number of distinct tetrominoes.
const ShapeCount = len(shapes)

// ErrNoSpawnRoom is returned when the board is too narrow to hold a new piece.
var ErrNoSpawnRoom = errors.New("tetris: board too narrow to spawn a piece")

// Source is the random source pieces are drawn from.
// *rand.Rand satisfies it; tests inject fixed sequences.
type Source interface {
	Intn(n int) int
}

// Piece is a falling tetromino: its shape, its color and its anchor.
type Piece struct {
	shape  Shape
	color  core.Color
	origin core.Point
}

// NewPiece draws a random piece for a board with the given column count.
// The draw order is color, starting column, shape. The starting column
// keeps one column of margin on each side; the row is 0, inside the hidden
// margin.
func NewPiece(rng Source, cols int) (*Piece, error) {
	if cols < 3 {
		return nil, ErrNoSpawnRoom
	}

	p := &Piece{}
	p.color = core.Color(1 + rng.Intn(core.PieceColorCount))
	p.origin = core.Pt(rng.Intn(cols-2)+1, 0)
	p.shape = shapes[rng.Intn(ShapeCount)]
	return p, nil
}

// Color returns the piece color.
func (p *Piece) Color() core.Color {
	return p.color
}

// Origin returns the anchor position on the board.
func (p *Piece) Origin() core.Point {
	return p.origin
}

// Offsets returns the cell offsets relative to the anchor.
func (p *Piece) Offsets() Shape {
	return p.shape
}

// Cells returns the absolute board cells covered by the piece.
func (p *Piece) Cells() [CellsPerPiece]core.Point {
	var cells [CellsPerPiece]core.Point
	for i, off := range p.shape {
		cells[i] = p.origin.Add(off)
	}
	return cells
}

// Valid reports whether every cell is inside the board and free.
func (p *Piece) Valid(b *Board) bool {
	for _, c := range p.Cells() {
		if !b.InBounds(c.X, c.Y) || b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Colliding reports whether the piece cannot fall any further: one of its
// cells is on the lowest row or sits right above an occupied cell.
func (p *Piece) Colliding(b *Board) bool {
	for _, c := range p.Cells() {
		if c.Y == b.Height()-1 || b.Occupied(c.X, c.Y+1) {
			return true
		}
	}
	return false
}

// Translate shifts the piece by dx columns. An invalid move is undone, so
// from the caller's point of view it simply does nothing.
func (p *Piece) Translate(b *Board, dx int) {
	p.origin.X += dx
	if !p.Valid(b) {
		p.origin.X -= dx
	}
}

// Rotate turns the piece a quarter turn clockwise about its anchor.
// No wall kick is tried: an invalid rotation restores the previous offsets.
func (p *Piece) Rotate(b *Board) {
	prev := p.shape
	for i, off := range p.shape {
		p.shape[i] = off.RotateCW()
	}
	if !p.Valid(b) {
		p.shape = prev
	}
}

// Advance moves the piece one row down without any check. Callers consult
// Colliding first.
func (p *Piece) Advance() {
	p.origin.Y++
}
