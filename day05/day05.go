// Package day05 solves https://adventofcode.com/2023/day/5: seeds are pushed
// through a chain of range remapping stages and the lowest location wins.
package day05

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023/aoc"
)

var (
	ErrUnknownStage = errors.New("unknown stage")
	ErrNoSeeds      = errors.New("no seeds")
)

// Stage is one of the named steps of the almanac.
type Stage int

const (
	Seed Stage = iota
	Soil
	Fertilizer
	Water
	Light
	Temperature
	Humidity
	Location
)

var stageNames = []string{
	Seed:        "seed",
	Soil:        "soil",
	Fertilizer:  "fertilizer",
	Water:       "water",
	Light:       "light",
	Temperature: "temperature",
	Humidity:    "humidity",
	Location:    "location",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// ParseStage returns the stage called name.
func ParseStage(name string) (Stage, error) {
	i := slices.Index(stageNames, name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
	return Stage(i), nil
}

// Mapper shifts the values of the half-open interval [Start, End) by Offset.
type Mapper struct {
	Start, End uint64
	Offset     int64
}

// ParseMapper parses "<dst start> <src start> <length>".
func ParseMapper(line string) (Mapper, error) {
	f, err := aoc.Uint64s(line)
	if err != nil {
		return Mapper{}, err
	}
	if len(f) != 3 {
		return Mapper{}, aoc.Syntaxf("got %d numbers, want 3", len(f))
	}
	dst, src, n := f[0], f[1], f[2]
	if src > math.MaxUint64-n || dst > math.MaxUint64-n {
		return Mapper{}, aoc.Syntaxf("range of length %d overflows", n)
	}
	return Mapper{
		Start:  src,
		End:    src + n,
		Offset: int64(dst - src), // wraps to the signed difference
	}, nil
}

func (m Mapper) Contains(v uint64) bool {
	return m.Start <= v && v < m.End
}

// Map returns the image of v, or false if v is outside the interval.
func (m Mapper) Map(v uint64) (uint64, bool) {
	if !m.Contains(v) {
		return 0, false
	}
	return v + uint64(m.Offset), true
}

// Map converts values of stage From to stage To.
type Map struct {
	From, To Stage
	Mappers  []Mapper
}

// Map applies the first Mapper containing v. Values no Mapper contains are
// returned unchanged.
func (m Map) Map(v uint64) uint64 {
	for _, mp := range m.Mappers {
		if out, ok := mp.Map(v); ok {
			return out
		}
	}
	return v
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []uint64
	Maps  []Map
}

// Location folds seed through every map, in the order they were declared.
func (a Almanac) Location(seed uint64) uint64 {
	v := seed
	for _, m := range a.Maps {
		v = m.Map(v)
	}
	return v
}

// LowestLocation returns the smallest Location over all seeds.
func (a Almanac) LowestLocation() (uint64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrNoSeeds
	}
	lowest := uint64(math.MaxUint64)
	for _, s := range a.Seeds {
		lowest = min(lowest, a.Location(s))
	}
	return lowest, nil
}

var headerRx = regexp.MustCompile(`^(\w+)-to-(\w+) map:$`)

func parseHeader(line string) (from, to Stage, err error) {
	m := headerRx.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, aoc.Syntaxf("want \"<stage>-to-<stage> map:\"")
	}
	if from, err = ParseStage(m[1]); err != nil {
		return 0, 0, err
	}
	if to, err = ParseStage(m[2]); err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// Parse parses the seeds line followed by blank line separated map blocks.
func Parse(input string) (Almanac, error) {
	var a Almanac
	lines := aoc.Lines(input)
	if len(lines) == 0 {
		return a, aoc.Syntaxf("empty input")
	}
	rest, ok := strings.CutPrefix(lines[0], "seeds:")
	if !ok {
		return a, aoc.LineErr(0, lines[0], aoc.Syntaxf("missing \"seeds:\""))
	}
	seeds, err := aoc.Uint64s(rest)
	if err != nil {
		return a, aoc.LineErr(0, lines[0], err)
	}
	a.Seeds = seeds

	i := 1
	for i < len(lines) {
		if lines[i] != "" {
			return a, aoc.LineErr(i, lines[i], aoc.Syntaxf("want blank line"))
		}
		i++
		if i == len(lines) {
			break
		}
		from, to, err := parseHeader(lines[i])
		if err != nil {
			return a, aoc.LineErr(i, lines[i], err)
		}
		m := Map{From: from, To: to}
		for i++; i < len(lines) && lines[i] != ""; i++ {
			mp, err := ParseMapper(lines[i])
			if err != nil {
				return a, aoc.LineErr(i, lines[i], err)
			}
			m.Mappers = append(m.Mappers, mp)
		}
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

func Solve(input string) (string, error) {
	a, err := Parse(input)
	if err != nil {
		return "", err
	}
	lowest, err := a.LowestLocation()
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(lowest, 10), nil
}
