// Package day01 solves https://adventofcode.com/2023/day/1: each line's
// calibration value is its first and last digit.
package day01

import (
	"errors"
	"strconv"

	"github.com/maisem/aoc2023/aoc"
)

var ErrNoDigits = errors.New("line has no digits")

// Calibration returns 10*first + last over the ASCII digits of line.
func Calibration(line string) (int, error) {
	first, last := -1, -1
	for _, r := range line {
		d, ok := aoc.Digit(r)
		if !ok {
			continue
		}
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0, ErrNoDigits
	}
	return 10*first + last, nil
}

func Solve(input string) (string, error) {
	var values []int
	for i, line := range aoc.Lines(input) {
		v, err := Calibration(line)
		if err != nil {
			return "", aoc.LineErr(i, line, err)
		}
		values = append(values, v)
	}
	return strconv.Itoa(aoc.Sum(values...)), nil
}
