// Package day06 solves https://adventofcode.com/2023/day/6: count the button
// hold times that beat each boat race record.
package day06

import (
	"math"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023/aoc"
)

// Race is a time limit and the record distance to beat within it.
type Race struct {
	Time, Distance int
}

// Beats reports whether holding the button for hold milliseconds beats the
// record.
func (r Race) Beats(hold int) bool {
	return hold*(r.Time-hold) > r.Distance
}

// Ways counts the hold times in [0, Time] that beat the record.
//
// The winning hold times lie strictly between the roots of
// hold^2 - Time*hold + Distance = 0. The float roots are only used as a
// starting point; the bounds are settled with Beats.
func (r Race) Ways() int {
	hi, lo, ok := aoc.SolveQuad(1, -r.Time, r.Distance)
	if !ok {
		return 0
	}
	first := max(int(math.Floor(lo))-1, 0)
	last := min(int(math.Ceil(hi))+1, r.Time)
	for first <= last && !r.Beats(first) {
		first++
	}
	for last >= first && !r.Beats(last) {
		last--
	}
	return max(last-first+1, 0)
}

func parseRow(ix int, line, label string) ([]int, error) {
	rest, ok := strings.CutPrefix(line, label+":")
	if !ok {
		return nil, aoc.LineErr(ix, line, aoc.Syntaxf("missing %q", label+":"))
	}
	v, err := aoc.Uints(rest)
	if err != nil {
		return nil, aoc.LineErr(ix, line, err)
	}
	return v, nil
}

// ParseRaces parses the "Time:" and "Distance:" rows.
func ParseRaces(input string) ([]Race, error) {
	lines := aoc.Lines(input)
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != 2 {
		return nil, aoc.Syntaxf("got %d lines, want 2", len(lines))
	}
	times, err := parseRow(0, lines[0], "Time")
	if err != nil {
		return nil, err
	}
	dists, err := parseRow(1, lines[1], "Distance")
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, aoc.Syntaxf("%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: dists[i]}
	}
	return races, nil
}

func Solve(input string) (string, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return "", err
	}
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.Ways()
	}
	return strconv.Itoa(aoc.Product(ways...)), nil
}
