package core

import (
	"errors"
	"testing"
)

func TestRuntimeConfigValidate(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		valid      bool
	}{
		{"default size", 20, 10, true},
		{"smallest", MinRows, MinCols, true},
		{"largest", MaxRows, MaxCols, true},
		{"too few rows", MinRows - 1, 10, false},
		{"too many rows", MaxRows + 1, 10, false},
		{"too few columns", 20, MinCols - 1, false},
		{"too many columns", 20, MaxCols + 1, false},
		{"zero", 0, 0, false},
		{"negative", -20, -10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := RuntimeConfig{Rows: tc.rows, Cols: tc.cols}.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate(%dx%d) = %v, expected nil", tc.rows, tc.cols, err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidSize) {
				t.Errorf("Validate(%dx%d) = %v, expected ErrInvalidSize", tc.rows, tc.cols, err)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
