package day01

import (
	"errors"
	"testing"

	"github.com/maisem/aoc2023/aoc"
)

func TestSolve(t *testing.T) {
	const sample = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`
	got, err := Solve(sample)
	if err != nil {
		t.Fatal(err)
	}
	if got != "142" {
		t.Errorf("Solve(sample) = %v, want 142", got)
	}
}

func TestCalibration(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
		{"0", 0},
		{"90", 90},
		{"one2three", 22},
		{"٣4٥", 44}, // only ASCII digits count
	}
	for _, tt := range tests {
		got, err := Calibration(tt.line)
		if err != nil {
			t.Errorf("Calibration(%q): %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Calibration(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestNoDigits(t *testing.T) {
	for _, line := range []string{"", "abc", "٣"} {
		if _, err := Calibration(line); !errors.Is(err, ErrNoDigits) {
			t.Errorf("Calibration(%q) error = %v, want %v", line, err, ErrNoDigits)
		}
	}

	_, err := Solve("1abc2\ntrebuchet\n")
	var pe *aoc.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 || !errors.Is(err, ErrNoDigits) {
		t.Errorf("Solve error = %v, want ErrNoDigits on line 2", err)
	}
}

func TestSolveEmpty(t *testing.T) {
	got, err := Solve("")
	if err != nil || got != "0" {
		t.Errorf("Solve(\"\") = %q, %v; want 0, nil", got, err)
	}
}
