// Package day04 solves https://adventofcode.com/2023/day/4: scratchcards
// worth one point for the first match, doubled for every other.
package day04

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023/aoc"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Drawn   []int
}

// ParseCard parses "Card <id>: <winning numbers> | <drawn numbers>".
func ParseCard(line string) (Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, aoc.Syntaxf("missing ':'")
	}
	id, ok := strings.CutPrefix(header, "Card")
	if !ok {
		return Card{}, aoc.Syntaxf("missing \"Card\"")
	}
	winning, drawn, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, aoc.Syntaxf("missing '|'")
	}
	var c Card
	var err error
	if c.ID, err = aoc.Uint(id); err != nil {
		return Card{}, err
	}
	if c.Winning, err = aoc.Uints(winning); err != nil {
		return Card{}, err
	}
	if c.Drawn, err = aoc.Uints(drawn); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Matches returns how many drawn numbers are winning numbers.
func (c Card) Matches() int {
	n := 0
	for _, d := range c.Drawn {
		if slices.Contains(c.Winning, d) {
			n++
		}
	}
	return n
}

// Score is 0 without matches and 2^(matches-1) otherwise.
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func Solve(input string) (string, error) {
	sum := 0
	for i, line := range aoc.Lines(input) {
		c, err := ParseCard(line)
		if err != nil {
			return "", aoc.LineErr(i, line, err)
		}
		sum += c.Score()
	}
	return strconv.Itoa(sum), nil
}
