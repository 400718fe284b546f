// Package day08 solves https://adventofcode.com/2023/day/8: follow left/right
// instructions through a network of nodes from AAA to ZZZ.
package day08

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/maisem/aoc2023/aoc"
)

var (
	ErrUnknownNode = errors.New("unknown node")
	ErrUnreachable = errors.New("target not reachable")
	ErrLoop        = errors.New("instructions loop without reaching target")
)

const (
	Start = "AAA"
	End   = "ZZZ"
)

// Direction is an instruction.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// Network is the parsed puzzle input.
type Network struct {
	Instructions []Direction
	Nodes        map[string][2]string // node -> left, right
}

var nodeRx = regexp.MustCompile(`^(\w{3}) = \((\w{3}), (\w{3})\)$`)

// Parse parses the instruction line, a blank line and the node lines.
func Parse(input string) (*Network, error) {
	lines := aoc.Lines(input)
	if len(lines) < 2 {
		return nil, aoc.Syntaxf("missing instructions or nodes")
	}
	n := &Network{Nodes: make(map[string][2]string)}
	for _, r := range lines[0] {
		switch r {
		case 'L':
			n.Instructions = append(n.Instructions, Left)
		case 'R':
			n.Instructions = append(n.Instructions, Right)
		default:
			return nil, aoc.LineErr(0, lines[0], aoc.Syntaxf("bad instruction %q", r))
		}
	}
	if len(n.Instructions) == 0 {
		return nil, aoc.LineErr(0, lines[0], aoc.Syntaxf("no instructions"))
	}
	if lines[1] != "" {
		return nil, aoc.LineErr(1, lines[1], aoc.Syntaxf("want blank line"))
	}
	for i := 2; i < len(lines); i++ {
		m := nodeRx.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, aoc.LineErr(i, lines[i], aoc.Syntaxf("want \"XXX = (YYY, ZZZ)\""))
		}
		if _, dup := n.Nodes[m[1]]; dup {
			return nil, aoc.LineErr(i, lines[i], aoc.Syntaxf("node %s defined twice", m[1]))
		}
		n.Nodes[m[1]] = [2]string{m[2], m[3]}
	}
	return n, nil
}

func (n *Network) graph() *aoc.Graph[string] {
	var g aoc.Graph[string]
	for k, lr := range n.Nodes {
		g.AddEdge(k, lr[Left], 1)
		g.AddEdge(k, lr[Right], 1)
	}
	return &g
}

type state struct {
	node string
	ip   int
}

// Steps follows the instructions, repeating them as needed, and returns the
// number of steps taken to get from `from` to `to`.
func (n *Network) Steps(from, to string) (int, error) {
	if _, ok := n.Nodes[from]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}
	if !n.graph().ReachableNodes(from)[to] {
		return 0, fmt.Errorf("%w: %s from %s", ErrUnreachable, to, from)
	}
	seen := make(map[state]bool)
	cur := from
	for steps := 0; ; steps++ {
		if cur == to {
			return steps, nil
		}
		st := state{cur, steps % len(n.Instructions)}
		if seen[st] {
			return 0, fmt.Errorf("%w: %s at step %d", ErrLoop, cur, steps)
		}
		seen[st] = true
		lr, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownNode, cur)
		}
		cur = lr[n.Instructions[st.ip]]
	}
}

func Solve(input string) (string, error) {
	n, err := Parse(input)
	if err != nil {
		return "", err
	}
	steps, err := n.Steps(Start, End)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(steps), nil
}
