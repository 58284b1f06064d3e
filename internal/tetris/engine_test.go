package tetris

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tetris/internal/core"
)

func newTestEngine(t *testing.T, rows, cols int) *Engine {
	t.Helper()
	e, err := New(rows, cols, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

// horizontalI returns an I piece lying flat with its anchor at the right end.
func horizontalI(x, y int) *Piece {
	p := newTestPiece(shapeI, core.ColorCyan, x, y)
	for i, off := range p.shape {
		p.shape[i] = off.RotateCW()
	}
	return p
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t, 20, 10)

	if e.State() != StatePaused {
		t.Errorf("State() = %v, expected paused", e.State())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", e.Score())
	}
	if e.FallDelay() != DelayMax || e.Pace() != DelayMax {
		t.Errorf("FallDelay() = %d, Pace() = %d, expected %d", e.FallDelay(), e.Pace(), DelayMax)
	}
	if e.Coefficient() != 1 {
		t.Errorf("Coefficient() = %d, expected 1", e.Coefficient())
	}
	if e.Current() == nil || e.Next() == nil {
		t.Fatal("engine should start with a current and a next piece")
	}
	if !reflect.DeepEqual(e.Board(), NewBoard(20, 10)) {
		t.Error("engine should start with an empty board")
	}
}

func TestNewEngineNarrowBoard(t *testing.T) {
	_, err := New(10, 2, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoSpawnRoom) {
		t.Errorf("New() error = %v, expected ErrNoSpawnRoom", err)
	}
}

func TestPauseStateMachine(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	origin := e.Current().Origin()

	for _, ev := range []core.Event{core.EventLeft, core.EventRight, core.EventRotate, core.EventUp, core.EventDown} {
		_ = e.HandleEvent(ev)
	}
	if e.Current().Origin() != origin || e.Pace() != DelayMax {
		t.Error("paused engine should ignore movement and speed keys")
	}

	_ = e.HandleEvent(core.EventConfirm)
	if e.State() != StateRunning {
		t.Fatalf("State() = %v after Enter, expected running", e.State())
	}

	_ = e.HandleEvent(core.EventConfirm)
	if e.State() != StatePaused {
		t.Errorf("State() = %v after second Enter, expected paused", e.State())
	}
}

func TestRestartFromPause(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	e.score = 12

	if err := e.HandleEvent(core.EventRestart); err != nil {
		t.Fatalf("HandleEvent(R) failed: %v", err)
	}
	if e.State() != StateRunning {
		t.Errorf("State() = %v after restart, expected running", e.State())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d after restart, expected 0", e.Score())
	}
}

func TestPaceAdjustment(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	_ = e.HandleEvent(core.EventConfirm)

	steps := []struct {
		ev       core.Event
		expected int
	}{
		{core.EventUp, 225}, // already at the tier's delay
		{core.EventDown, 150},
		{core.EventDown, 75},
		{core.EventDown, 0},
		{core.EventDown, 0},
		{core.EventUp, 75},
		{core.EventUp, 150},
		{core.EventUp, 225},
		{core.EventUp, 225},
	}

	for i, s := range steps {
		_ = e.HandleEvent(s.ev)
		if e.Pace() != s.expected {
			t.Errorf("step %d (%v): Pace() = %d, expected %d", i, s.ev, e.Pace(), s.expected)
		}
	}
}

func TestPaceBoundedByTier(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	_ = e.HandleEvent(core.EventConfirm)
	e.fallDelay, e.pace = 210, 210

	_ = e.HandleEvent(core.EventUp)
	if e.Pace() != 210 {
		t.Errorf("Pace() = %d, expected 210", e.Pace())
	}
	_ = e.HandleEvent(core.EventDown)
	_ = e.HandleEvent(core.EventDown)
	_ = e.HandleEvent(core.EventDown)
	if e.Pace() != 60 {
		t.Errorf("Pace() = %d, expected 60", e.Pace())
	}
	_ = e.HandleEvent(core.EventUp)
	_ = e.HandleEvent(core.EventUp)
	_ = e.HandleEvent(core.EventUp)
	if e.Pace() != 210 {
		t.Errorf("Pace() = %d, expected 210", e.Pace())
	}
}

func TestRunningMovesPiece(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	_ = e.HandleEvent(core.EventConfirm)
	e.current = newTestPiece(shapeL, core.ColorRed, 5, 3)

	_ = e.HandleEvent(core.EventLeft)
	_ = e.HandleEvent(core.EventLeft)
	_ = e.HandleEvent(core.EventRight)
	if e.Current().Origin() != core.Pt(4, 3) {
		t.Errorf("Origin() = %v, expected (4, 3)", e.Current().Origin())
	}

	_ = e.HandleEvent(core.EventRotate)
	if e.Current().Offsets()[0] != shapes[shapeL][0].RotateCW() {
		t.Errorf("Rotate did not apply: %v", e.Current().Offsets())
	}
}

func TestGravityFallsThenLocks(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	e.current = newTestPiece(shapeI, core.ColorCyan, 2, 0)
	next := e.Next()

	for y := 1; y <= 7; y++ {
		out, _ := e.Gravity()
		if out != OutcomeMoved {
			t.Fatalf("Gravity() #%d = %v, expected moved", y, out)
		}
		if e.Current().Origin().Y != y {
			t.Fatalf("Origin().Y = %d, expected %d", e.Current().Origin().Y, y)
		}
	}

	out, cleared := e.Gravity()
	if out != OutcomeLocked || cleared != 0 {
		t.Fatalf("Gravity() = %v, %d, expected locked, 0", out, cleared)
	}
	if e.Current() != next {
		t.Error("next piece should become current after a lock")
	}
	for y := 7; y <= 10; y++ {
		if e.Board().Cell(2, y) != core.ColorCyan {
			t.Errorf("Cell(2, %d) = %v, expected cyan", y, e.Board().Cell(2, y))
		}
	}
}

func TestLockResetsPace(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	e.pace = 0
	e.current = newTestPiece(shapeO, core.ColorRed, 1, 9)

	if out, _ := e.Gravity(); out != OutcomeLocked {
		t.Fatalf("Gravity() = %v, expected locked", out)
	}
	if e.Pace() != e.FallDelay() {
		t.Errorf("Pace() = %d after lock, expected %d", e.Pace(), e.FallDelay())
	}
}

func TestCompletingRowScoresAndCompacts(t *testing.T) {
	e := newTestEngine(t, 10, 10)
	fillRow(e.board, 10, 6, 7, 8, 9)
	e.board.cells[8][0] = core.ColorRed
	e.current = horizontalI(9, 10)

	out, cleared := e.Gravity()
	if out != OutcomeLocked || cleared != 1 {
		t.Fatalf("Gravity() = %v, %d, expected locked, 1", out, cleared)
	}
	if e.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", e.Score())
	}
	for x := range e.board.Width() {
		if e.board.Occupied(x, 10) {
			t.Errorf("bottom row column %d still occupied", x)
		}
	}
	if e.board.Cell(0, 9) != core.ColorRed {
		t.Errorf("rows above should shift down; Cell(0, 9) = %v", e.board.Cell(0, 9))
	}
}

func TestScoreUsesCoefficient(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	e.score, e.coefficient, e.fallDelay = 20, 3, 195
	fillRow(e.board, 9, 2)
	fillRow(e.board, 10, 2)
	e.current = newTestPiece(shapeI, core.ColorCyan, 2, 7)

	_, cleared := e.Gravity()
	if cleared != 2 {
		t.Fatalf("cleared = %d, expected 2", cleared)
	}
	if e.Score() != 26 {
		t.Errorf("Score() = %d, expected 26", e.Score())
	}
	if e.Coefficient() != 3 || e.FallDelay() != 195 {
		t.Errorf("Coefficient() = %d, FallDelay() = %d, expected 3, 195", e.Coefficient(), e.FallDelay())
	}
}

func TestSpeedCurve(t *testing.T) {
	tests := []struct {
		name         string
		score, coef  int
		delay        int
		rows         int
		expScore     int
		expCoef      int
		expFallDelay int
	}{
		{"first tier boundary", 9, 1, 225, 1, 10, 2, 210},
		{"four rows at once", 18, 2, 210, 4, 26, 3, 195},
		{"clamped at the floor", 119, 12, 60, 4, 167, 17, 45},
		{"frozen at the floor", 167, 17, 45, 1, 184, 17, 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, 10, 5)
			e.score, e.coefficient, e.fallDelay = tc.score, tc.coef, tc.delay
			for i := range tc.rows {
				fillRow(e.board, 10-i, 2)
			}
			e.current = newTestPiece(shapeI, core.ColorCyan, 2, 7)

			if _, cleared := e.Gravity(); cleared != tc.rows {
				t.Fatalf("cleared = %d, expected %d", cleared, tc.rows)
			}
			if e.Score() != tc.expScore {
				t.Errorf("Score() = %d, expected %d", e.Score(), tc.expScore)
			}
			if e.Coefficient() != tc.expCoef {
				t.Errorf("Coefficient() = %d, expected %d", e.Coefficient(), tc.expCoef)
			}
			if e.FallDelay() != tc.expFallDelay {
				t.Errorf("FallDelay() = %d, expected %d", e.FallDelay(), tc.expFallDelay)
			}
		})
	}
}

func TestGameOverAndRestart(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	_ = e.HandleEvent(core.EventConfirm)
	e.score = 42
	e.board.Lock(newTestPiece(shapeO, core.ColorRed, 1, 0))

	e.Step(core.EventNone)
	if e.State() != StateGameOver {
		t.Fatalf("State() = %v, expected game_over", e.State())
	}

	origin := e.Current().Origin()
	offsets := e.Current().Offsets()
	for _, ev := range []core.Event{core.EventLeft, core.EventRight, core.EventRotate, core.EventUp, core.EventDown, core.EventConfirm} {
		e.Step(ev)
		if e.State() != StateGameOver {
			t.Fatalf("%v left the game-over state", ev)
		}
	}
	if e.Current().Origin() != origin || e.Current().Offsets() != offsets || e.Pace() != DelayMax {
		t.Error("game-over state should ignore every key but restart")
	}

	if res := e.Step(core.EventRestart); res.Outcome == OutcomeSpawnFailed {
		t.Fatal("restart failed")
	}
	if e.State() != StateRunning {
		t.Errorf("State() = %v after restart, expected running", e.State())
	}
	if e.Score() != 0 || e.FallDelay() != DelayMax || e.Coefficient() != 1 {
		t.Errorf("restart left score %d, delay %d, coefficient %d", e.Score(), e.FallDelay(), e.Coefficient())
	}
	if !reflect.DeepEqual(e.Board(), NewBoard(10, 5)) {
		t.Error("restart should leave an all-background board")
	}
}

func TestStepCadence(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	_ = e.HandleEvent(core.EventConfirm)

	var renders []int
	for i := 1; i <= 16; i++ {
		res := e.Step(core.EventNone)
		if res.Render {
			renders = append(renders, i)
			if res.Outcome == OutcomeNone {
				t.Errorf("step %d rendered without a gravity step", i)
			}
		} else if res.Outcome != OutcomeNone {
			t.Errorf("step %d ran gravity without rendering", i)
		}
	}

	expected := []int{6, 11, 16}
	if !reflect.DeepEqual(renders, expected) {
		t.Errorf("rendered on steps %v, expected %v", renders, expected)
	}
}

func TestStepPausedRendersWithoutGravity(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	origin := e.Current().Origin()

	rendered := false
	for range SubTicks + 1 {
		res := e.Step(core.EventNone)
		if res.Outcome != OutcomeNone {
			t.Fatalf("paused Step() = %v, expected none", res.Outcome)
		}
		rendered = rendered || res.Render
	}

	if !rendered {
		t.Error("paused engine should still request frames")
	}
	if e.Current().Origin() != origin {
		t.Error("paused engine moved the piece")
	}
}

func TestSpawnFailure(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	_ = e.HandleEvent(core.EventConfirm)
	e.current = newTestPiece(shapeO, core.ColorRed, 1, 9)
	e.spawn = func() (*Piece, error) { return nil, ErrNoSpawnRoom }

	out, _ := e.Gravity()
	if out != OutcomeSpawnFailed {
		t.Fatalf("Gravity() = %v, expected spawn_failed", out)
	}
	if e.Next() != nil {
		t.Error("Next() should be nil after a spawn failure")
	}

	e.state = StateGameOver
	if res := e.Step(core.EventRestart); res.Outcome != OutcomeSpawnFailed {
		t.Errorf("Step(R) = %v, expected spawn_failed", res.Outcome)
	}
}

func TestLimitsHoldDuringPlay(t *testing.T) {
	e := newTestEngine(t, 10, 6)
	script := rand.New(rand.NewSource(99))
	events := []core.Event{
		core.EventNone, core.EventNone, core.EventLeft, core.EventRight,
		core.EventRotate, core.EventUp, core.EventDown, core.EventConfirm, core.EventRestart,
	}
	_ = e.HandleEvent(core.EventConfirm)

	for range 20000 {
		ev := events[script.Intn(len(events))]
		res := e.Step(ev)
		if res.Outcome == OutcomeSpawnFailed {
			t.Fatal("unexpected spawn failure")
		}
		if e.FallDelay() < DelayMin || e.FallDelay() > DelayMax {
			t.Fatalf("FallDelay() = %d out of [%d, %d]", e.FallDelay(), DelayMin, DelayMax)
		}
		if e.Pace() < 0 || e.Pace() > e.FallDelay() {
			t.Fatalf("Pace() = %d out of [0, %d]", e.Pace(), e.FallDelay())
		}
		if e.Score() < 0 {
			t.Fatalf("Score() = %d", e.Score())
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() []Snapshot {
		e, err := New(15, 8, rand.New(rand.NewSource(2024)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		script := []core.Event{core.EventConfirm, core.EventLeft, core.EventRotate, core.EventDown}
		var out []Snapshot
		for i := range 400 {
			ev := core.EventNone
			if i%7 == 0 {
				ev = script[(i/7)%len(script)]
			}
			e.Step(ev)
			out = append(out, e.Snapshot())
		}
		return out
	}

	if !reflect.DeepEqual(play(), play()) {
		t.Error("same seed and inputs produced different games")
	}
}

func TestSnapshot(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	e.current = newTestPiece(shapeI, core.ColorCyan, 2, 0)
	e.board.cells[10][0] = core.ColorRed

	s := e.Snapshot()

	if s.Rows != 10 || s.Cols != 5 {
		t.Fatalf("Snapshot size = %dx%d, expected 10x5", s.Rows, s.Cols)
	}
	if !s.Paused || s.GameOver {
		t.Errorf("Paused = %v, GameOver = %v, expected true, false", s.Paused, s.GameOver)
	}
	expected := []core.Point{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	if !reflect.DeepEqual(s.Current, expected) {
		t.Errorf("Current = %v, expected %v", s.Current, expected)
	}
	if !s.HasNext || s.Next != e.Next().Offsets() {
		t.Error("Snapshot should carry the next piece")
	}

	grid := s.Composite()
	if grid[0][2] != core.ColorCyan || grid[9][0] != core.ColorRed {
		t.Errorf("Composite() missing cells: %v / %v", grid[0][2], grid[9][0])
	}
	if s.Board[0][2] != core.ColorDefault {
		t.Error("Composite() modified the snapshot board")
	}

	s.Board[9][0] = core.ColorBlue
	if e.Board().Cell(0, 10) != core.ColorRed {
		t.Error("Snapshot shares storage with the engine")
	}
}
