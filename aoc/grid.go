package aoc

import (
	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

// AtOk returns the value at p, or false if p lies outside the grid. Rows may
// have different lengths.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// CDist returns the chebyshev distance between a and b, so every point of
// ForNeighbors is at distance 1.
func (a Pt2[T]) CDist(b Pt2[T]) T {
	return max(AbsDiff[T](a.X, b.X), AbsDiff[T](a.Y, b.Y))
}
