package tui

import (
	"fmt"

	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/platform/hud"
	"github.com/vovakirdan/tetris/internal/tetris"
)

const (
	blockRune = '█'
	sideWidth = 26 // score and message boxes
	gap       = 2  // columns between the board and the side panels
)

// Layout positions the panels for a board size. Every rect includes its
// border.
type Layout struct {
	CellWidth int
	Board     core.Rect
	Next      core.Rect
	Score     core.Rect
	Message   core.Rect
	Width     int
	Height    int
}

// NewLayout computes the panel positions for rows x cols cells.
func NewLayout(rows, cols, cellWidth int) Layout {
	l := Layout{CellWidth: cellWidth}

	// Row 0 holds the title, the board box starts below it.
	l.Board = core.NewRect(0, 1, cols*cellWidth+2, rows+2)

	sideX := l.Board.Right() + gap
	side := core.Max(hud.PreviewSize*cellWidth+2, sideWidth)
	l.Next = core.NewRect(sideX, 2, hud.PreviewSize*cellWidth+2, hud.PreviewSize+2)
	l.Score = core.NewRect(sideX, l.Next.Bottom()+1, side, 4)
	l.Message = core.NewRect(sideX, l.Score.Bottom(), side, 9)

	l.Width = sideX + side
	l.Height = core.Max(l.Board.Bottom(), l.Message.Bottom())
	return l
}

// Draw renders a snapshot into the screen, resizing it to the layout.
func (l Layout) Draw(scr *core.Screen, s tetris.Snapshot) {
	scr.Resize(l.Width, l.Height)
	scr.Clear()

	// Board
	scr.DrawTextColor(centered(l.Board, hud.Title), 0, hud.Title, core.ColorWhite)
	scr.DrawBox(l.Board, core.ColorGray)
	for y, row := range s.Composite() {
		for x, c := range row {
			l.drawCell(scr, l.Board.X+1, l.Board.Y+1, x, y, c)
		}
	}

	// Next piece
	scr.DrawTextColor(centered(l.Next, hud.NextLabel), l.Next.Y-1, hud.NextLabel, core.ColorWhite)
	scr.DrawBox(l.Next, core.ColorGray)
	for _, c := range hud.PreviewCells(s) {
		l.drawCell(scr, l.Next.X+1, l.Next.Y+1, c.X, c.Y, s.NextColor)
	}

	// Score
	scr.DrawBox(l.Score, core.ColorGray)
	scr.DrawTextColor(l.Score.X+2, l.Score.Y+1, hud.ScoreLine(s), core.ColorWhite)
	scr.DrawTextColor(l.Score.X+2, l.Score.Y+2, hud.SpeedLine(s), core.ColorGray)

	// Message
	msgColor := core.ColorWhite
	if s.GameOver {
		msgColor = core.ColorRed
	}
	for i, line := range hud.Message(s) {
		if l.Message.Y+1+i >= l.Message.Bottom()-1 {
			break
		}
		scr.DrawTextColor(l.Message.X+2, l.Message.Y+1+i, line, msgColor)
	}
}

// drawCell paints board cell (x, y) of a panel whose interior starts at
// (ox, oy). Each cell is CellWidth columns wide.
func (l Layout) drawCell(scr *core.Screen, ox, oy, x, y int, c core.Color) {
	r := ' '
	if !c.IsBackground() {
		r = blockRune
	}
	scr.DrawRect(core.NewRect(ox+x*l.CellWidth, oy+y, l.CellWidth, 1), r, c)
}

// centered returns the x where text is centered over a rect.
func centered(r core.Rect, text string) int {
	n := len([]rune(text))
	return r.X + core.Max(0, (r.W-n)/2)
}

// MinSize returns the terminal size the layout needs, help line included.
func (l Layout) MinSize() (width, height int) {
	return l.Width, l.Height + 1
}

// tooSmall is shown instead of the board when the terminal is too small.
func (l Layout) tooSmall(width, height int) string {
	w, h := l.MinSize()
	return fmt.Sprintf("Terminal too small.\nNeed %dx%d, have %dx%d.", w, h, width, height)
}
