package core

import "testing"

func TestPointRotateCW(t *testing.T) {
	tests := []struct {
		name     string
		in       Point
		expected Point
	}{
		{"origin stays", Pt(0, 0), Pt(0, 0)},
		{"right becomes down", Pt(1, 0), Pt(0, 1)},
		{"down becomes left", Pt(0, 1), Pt(-1, 0)},
		{"left becomes up", Pt(-1, 0), Pt(0, -1)},
		{"diagonal", Pt(-1, 1), Pt(-1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.in.RotateCW()
			if result != tc.expected {
				t.Errorf("RotateCW(%v) = %v, expected %v", tc.in, result, tc.expected)
			}
		})
	}
}

func TestPointRotateFullTurn(t *testing.T) {
	p := Pt(2, -3)
	q := p
	for range 4 {
		q = q.RotateCW()
	}
	if q != p {
		t.Errorf("four quarter turns = %v, expected %v", q, p)
	}
}

func TestPointAdd(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(-3, 4)); got != Pt(-2, 6) {
		t.Errorf("Add() = %v, expected (-2, 6)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
