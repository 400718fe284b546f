// Package day07 solves https://adventofcode.com/2023/day/7: Camel Cards,
// poker hands ranked by category and then card by card.
package day07

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023/aoc"
)

var (
	ErrUnknownCard = errors.New("unknown card")
	ErrShape       = errors.New("impossible hand shape")
)

// symbols lists the card symbols from strongest to weakest.
const symbols = "AKQJT98765432"

// Card is a card symbol.
type Card byte

// ParseCard returns the card for symbol r.
func ParseCard(r rune) (Card, error) {
	if r > 0x7f || strings.IndexByte(symbols, byte(r)) < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCard, r)
	}
	return Card(r), nil
}

// Strength is 12 for an ace down to 0 for a two.
func (c Card) Strength() int {
	return len(symbols) - 1 - strings.IndexByte(symbols, byte(c))
}

func (c Card) String() string { return string(rune(c)) }

// Category is the kind of a hand. Stronger categories compare greater.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

var shapes = []struct {
	counts []int
	cat    Category
}{
	{[]int{5}, FiveOfAKind},
	{[]int{4, 1}, FourOfAKind},
	{[]int{3, 2}, FullHouse},
	{[]int{3, 1, 1}, ThreeOfAKind},
	{[]int{2, 2, 1}, TwoPair},
	{[]int{2, 1, 1, 1}, OnePair},
	{[]int{1, 1, 1, 1, 1}, HighCard},
}

// Classify returns the category of the hand from the multiplicities of its
// cards, largest first.
func Classify(cards [5]Card) (Category, error) {
	var buckets [len(symbols)]int
	for _, c := range cards {
		buckets[c.Strength()]++
	}
	var counts []int
	for _, n := range buckets {
		if n > 0 {
			counts = append(counts, n)
		}
	}
	slices.SortFunc(counts, func(a, b int) int { return b - a })
	for _, s := range shapes {
		if slices.Equal(counts, s.counts) {
			return s.cat, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrShape, counts)
}

// Hand is a set of five cards and the bid placed on it.
type Hand struct {
	Cards    [5]Card
	Bid      int
	Category Category
}

// ParseHand parses "<5 cards> <bid>".
func ParseHand(line string) (Hand, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return Hand{}, aoc.Syntaxf("want \"<cards> <bid>\"")
	}
	var h Hand
	rs := []rune(f[0])
	if len(rs) != len(h.Cards) {
		return Hand{}, aoc.Syntaxf("got %d cards, want %d", len(rs), len(h.Cards))
	}
	for i, r := range rs {
		c, err := ParseCard(r)
		if err != nil {
			return Hand{}, err
		}
		h.Cards[i] = c
	}
	bid, err := aoc.Uint(f[1])
	if err != nil {
		return Hand{}, err
	}
	h.Bid = bid
	if h.Category, err = Classify(h.Cards); err != nil {
		return Hand{}, err
	}
	return h, nil
}

func (h Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

// Compare orders hands by category, then by the strength of their cards from
// left to right.
func Compare(a, b Hand) int {
	if c := cmp.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	for i := range a.Cards {
		if c := cmp.Compare(a.Cards[i].Strength(), b.Cards[i].Strength()); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings ranks the hands, weakest first with rank 1, and sums bid * rank.
func Winnings(hands []Hand) int {
	hands = slices.Clone(hands)
	slices.SortStableFunc(hands, Compare)
	total := 0
	for i, h := range hands {
		total += h.Bid * (i + 1)
	}
	return total
}

func Solve(input string) (string, error) {
	var hands []Hand
	for i, line := range aoc.Lines(input) {
		h, err := ParseHand(line)
		if err != nil {
			return "", aoc.LineErr(i, line, err)
		}
		hands = append(hands, h)
	}
	return strconv.Itoa(Winnings(hands)), nil
}
