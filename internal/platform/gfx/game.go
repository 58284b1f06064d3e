package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tetris/internal/core"
	"github.com/vovakirdan/tetris/internal/platform/hud"
	"github.com/vovakirdan/tetris/internal/tetris"
)

const (
	margin     = 16
	lineHeight = 16 // debug font line spacing
	textWidth  = 200
	cellGap    = 1 // pixels left between neighbouring cells
)

// layout holds the pixel geometry of the window.
type layout struct {
	cell   int
	board  core.Rect
	next   core.Rect
	text   core.Point // top-left of the score and message text
	width  int
	height int
}

func newLayout(rows, cols, cell int) layout {
	l := layout{cell: cell}
	l.board = core.NewRect(margin, margin+lineHeight, cols*cell, rows*cell)

	sideX := l.board.Right() + margin
	l.next = core.NewRect(sideX, l.board.Y+lineHeight, hud.PreviewSize*cell, hud.PreviewSize*cell)
	l.text = core.Pt(sideX, l.next.Bottom()+margin)

	l.width = sideX + core.Max(l.next.W, textWidth) + margin
	textBottom := l.text.Y + 10*lineHeight
	l.height = core.Max(l.board.Bottom(), textBottom) + margin
	return l
}

// game adapts the renderer to ebiten.Game.
type game struct {
	r *Renderer
}

// Update runs on ebiten's goroutine at a fixed tick rate.
func (g *game) Update() error {
	r := g.r
	if r.done.Load() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		r.push(core.EventQuit)
	}
	for _, b := range r.keys {
		if inpututil.IsKeyJustPressed(b.key) {
			r.push(b.event)
		}
	}
	return nil
}

// Draw paints the last snapshot.
func (g *game) Draw(screen *ebiten.Image) {
	r := g.r
	screen.Fill(r.colors.of(core.ColorDefault))

	s, ok := r.snapshot()
	if !ok {
		return
	}
	l := r.layout

	ebitenutil.DebugPrintAt(screen, hud.Title, l.board.X, margin)
	g.frame(screen, l.board)
	for y, row := range s.Composite() {
		for x, c := range row {
			if !c.IsBackground() {
				g.cell(screen, l.board, x, y, c)
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, hud.NextLabel, l.next.X, margin)
	g.frame(screen, l.next)
	for _, p := range hud.PreviewCells(s) {
		g.cell(screen, l.next, p.X, p.Y, s.NextColor)
	}

	lines := []string{hud.ScoreLine(s), hud.SpeedLine(s), ""}
	lines = append(lines, hud.Message(s)...)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, l.text.X, l.text.Y+i*lineHeight)
	}
	if s.GameOver {
		g.shade(screen, l.board, s)
	}
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.r.layout.width, g.r.layout.height
}

// frame outlines a panel one pixel outside its area.
func (g *game) frame(screen *ebiten.Image, area core.Rect) {
	vector.StrokeRect(screen,
		float32(area.X-1), float32(area.Y-1), float32(area.W+2), float32(area.H+2),
		1, g.r.colors.of(core.ColorGray), false)
}

// cell fills board cell (x, y) of a panel.
func (g *game) cell(screen *ebiten.Image, area core.Rect, x, y int, c core.Color) {
	size := g.r.layout.cell
	vector.DrawFilledRect(screen,
		float32(area.X+x*size), float32(area.Y+y*size),
		float32(size-cellGap), float32(size-cellGap),
		g.r.colors.of(c), false)
}

// shade greys out the stack once the game is over.
func (g *game) shade(screen *ebiten.Image, area core.Rect, s tetris.Snapshot) {
	for y, row := range s.Board {
		for x, c := range row {
			if !c.IsBackground() {
				g.cell(screen, area, x, y, core.ColorGray)
			}
		}
	}
}
