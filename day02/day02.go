// Package day02 solves https://adventofcode.com/2023/day/2: which games are
// possible with a bag of 12 red, 13 green and 14 blue cubes.
package day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023/aoc"
)

var ErrUnknownColor = errors.New("unknown color")

// Hand is one handful of cubes shown from the bag.
type Hand struct {
	Red, Green, Blue int
}

// Limit is the content of the bag.
var Limit = Hand{Red: 12, Green: 13, Blue: 14}

// Add returns the cube counts of h and o combined.
func (h Hand) Add(o Hand) Hand {
	return Hand{h.Red + o.Red, h.Green + o.Green, h.Blue + o.Blue}
}

// Within reports whether no color of h exceeds limit.
func (h Hand) Within(limit Hand) bool {
	return h.Red <= limit.Red && h.Green <= limit.Green && h.Blue <= limit.Blue
}

// ParseHand parses "<n> <color>, <n> <color>, ...". A color given twice adds
// up.
func ParseHand(s string) (Hand, error) {
	var h Hand
	for _, part := range strings.Split(s, ",") {
		f := strings.Fields(part)
		if len(f) != 2 {
			return Hand{}, aoc.Syntaxf("want \"<n> <color>\", got %q", strings.TrimSpace(part))
		}
		n, err := aoc.Uint(f[0])
		if err != nil {
			return Hand{}, err
		}
		switch f[1] {
		case "red":
			h = h.Add(Hand{Red: n})
		case "green":
			h = h.Add(Hand{Green: n})
		case "blue":
			h = h.Add(Hand{Blue: n})
		default:
			return Hand{}, fmt.Errorf("%w: %q", ErrUnknownColor, f[1])
		}
	}
	return h, nil
}

// Game is a game id and the hands shown during it.
type Game struct {
	ID    int
	Hands []Hand
}

// ParseGame parses "Game <id>: <hand>; <hand>; ...".
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, aoc.Syntaxf("missing ':'")
	}
	id, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return Game{}, aoc.Syntaxf("missing \"Game\"")
	}
	g := Game{}
	var err error
	if g.ID, err = aoc.Uint(id); err != nil {
		return Game{}, err
	}
	for _, hs := range strings.Split(body, ";") {
		h, err := ParseHand(hs)
		if err != nil {
			return Game{}, err
		}
		g.Hands = append(g.Hands, h)
	}
	return g, nil
}

// Possible reports whether every hand of the game fits in limit.
func (g Game) Possible(limit Hand) bool {
	for _, h := range g.Hands {
		if !h.Within(limit) {
			return false
		}
	}
	return true
}

func Solve(input string) (string, error) {
	sum := 0
	for i, line := range aoc.Lines(input) {
		g, err := ParseGame(line)
		if err != nil {
			return "", aoc.LineErr(i, line, err)
		}
		if g.Possible(Limit) {
			sum += g.ID
		}
	}
	return strconv.Itoa(sum), nil
}
