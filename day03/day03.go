// Package day03 solves https://adventofcode.com/2023/day/3: sum the numbers of
// an engine schematic that touch a symbol, diagonals included.
package day03

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/maisem/aoc2023/aoc"
)

var ErrRagged = errors.New("rows differ in length")

// Kind is what a schematic cell holds.
type Kind int

const (
	Void Kind = iota
	Digit
	Symbol
)

// Cell is one character of the schematic.
type Cell struct {
	Pos   aoc.Pt
	Kind  Kind
	Value int // digit value, for Kind Digit
}

func newCell(pos aoc.Pt, r rune) Cell {
	c := Cell{Pos: pos}
	switch v, ok := aoc.Digit(r); {
	case ok:
		c.Kind, c.Value = Digit, v
	case r == '.':
		c.Kind = Void
	default:
		c.Kind = Symbol
	}
	return c
}

// PartNumber is a maximal horizontal run of digits.
type PartNumber struct {
	Value int
	Cells []aoc.Pt
}

func (pn *PartNumber) grow(c Cell) {
	pn.Value = pn.Value*10 + c.Value
	pn.Cells = append(pn.Cells, c.Pos)
}

// AdjacentTo reports whether any cell of the number is within chebyshev
// distance 1 of p.
func (pn PartNumber) AdjacentTo(p aoc.Pt) bool {
	for _, c := range pn.Cells {
		if c.CDist(p) <= 1 {
			return true
		}
	}
	return false
}

// Schematic is the parsed puzzle input.
type Schematic struct {
	Grid    aoc.Grid[Cell]
	Parts   []PartNumber
	Symbols []aoc.Pt
}

// Parse scans the grid row by row, collecting numbers and symbols.
func Parse(input string) (*Schematic, error) {
	s := &Schematic{}
	width := -1
	for y, line := range aoc.Lines(input) {
		row := []rune(line)
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, aoc.LineErr(y, line, fmt.Errorf("%w: got %d columns, want %d", ErrRagged, len(row), width))
		}

		cells := make([]Cell, 0, len(row))
		var open *PartNumber
		for x, r := range row {
			c := newCell(aoc.Pt{X: x, Y: y}, r)
			cells = append(cells, c)
			if c.Kind == Digit {
				if open == nil {
					open = &PartNumber{}
				}
				open.grow(c)
				continue
			}
			if c.Kind == Symbol {
				s.Symbols = append(s.Symbols, c.Pos)
			}
			if open != nil {
				s.Parts = append(s.Parts, *open)
				open = nil
			}
		}
		// The end of the row terminates a number like any non-digit.
		if open != nil {
			s.Parts = append(s.Parts, *open)
		}
		s.Grid = append(s.Grid, cells)
	}
	return s, nil
}

// NearSymbol reports whether a symbol is adjacent to the number.
func (s *Schematic) NearSymbol(pn PartNumber) bool {
	for _, p := range pn.Cells {
		found := false
		p.ForNeighbors(func(n aoc.Pt) bool {
			c, ok := s.Grid.AtOk(n)
			found = ok && c.Kind == Symbol
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

// PartSum sums the numbers adjacent to at least one symbol.
func (s *Schematic) PartSum() int {
	sum := 0
	for _, pn := range s.Parts {
		if s.NearSymbol(pn) {
			sum += pn.Value
		}
	}
	return sum
}

func Solve(input string) (string, error) {
	s, err := Parse(input)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(s.PartSum()), nil
}
