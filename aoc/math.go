package aoc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the value of an ASCII digit. ok is false for any other rune.
func Digit(r rune) (v int, ok bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// SolveQuad returns the roots of the quadratic equation ax^2 + bx + c = 0.
// ok is false if there are no real roots.
func SolveQuad[T Number](a, b, c T) (r1, r2 float64, ok bool) {
	d := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if d < 0 {
		return 0, 0, false
	}
	d = math.Sqrt(d)
	a2 := 2 * float64(a)
	return (-float64(b) + d) / a2, (-float64(b) - d) / a2, true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers, 1 if there are none.
func Product[T Number](nums ...T) T {
	out := T(1)
	for _, v := range nums {
		out *= v
	}
	return out
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string. It panics if s is not a number.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Uint parses an unsigned 32-bit decimal from the trimmed string. A sign is
// a syntax error.
func Uint(s string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, syntaxErr(err)
	}
	return int(n), nil
}

// Uints parses the whitespace separated values of s with Uint.
func Uints(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Fields(s) {
		n, err := Uint(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Uint64s is like Uints but for 64-bit values.
func Uint64s(s string) ([]uint64, error) {
	var out []uint64
	for _, f := range strings.Fields(s) {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, syntaxErr(err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Lines splits the input into lines. A trailing newline does not produce a
// final empty line, and carriage returns are dropped.
func Lines(input string) []string {
	input = strings.TrimSuffix(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
