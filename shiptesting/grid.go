package shiptesting

import (
	"errors"
	"strings"

	"github.com/forestrie/go-shipsearch/rule"
)

var ErrNotPeriodic = errors.New("shiptesting: pattern does not recur")

type Rule = rule.Rule

type Cell struct {
	Row, Col int
}

func (c Cell) Abs() Cell {
	return Cell{Row: max(c.Row, -c.Row), Col: max(c.Col, -c.Col)}
}

// Grid is an unbounded set of live cells.
type Grid map[Cell]struct{}

// ParsePattern reads rows of 'o' (live) and any other character (dead).
func ParsePattern(lines []string) Grid {
	g := Grid{}
	for y, l := range lines {
		for x, ch := range l {
			if ch == 'o' {
				g[Cell{y, x}] = struct{}{}
			}
		}
	}
	return g
}

// Step returns the next generation of g under r.
func Step(g Grid, r Rule) Grid {
	counts := map[Cell]int{}
	for c := range g {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dy != 0 || dx != 0 {
					counts[Cell{c.Row + dy, c.Col + dx}]++
				}
			}
		}
	}
	next := Grid{}
	for c, n := range counts {
		_, alive := g[c]
		if (alive && r.Survives(n)) || (!alive && r.Births(n)) {
			next[c] = struct{}{}
		}
	}
	return next
}

// normalize translates g so its bounding box starts at the origin and
// returns the translation removed.
func normalize(g Grid) (Grid, Cell) {
	if len(g) == 0 {
		return g, Cell{}
	}
	first := true
	var lo Cell
	for c := range g {
		if first || c.Row < lo.Row {
			lo.Row = c.Row
		}
		if first || c.Col < lo.Col {
			lo.Col = c.Col
		}
		first = false
	}
	out := make(Grid, len(g))
	for c := range g {
		out[Cell{c.Row - lo.Row, c.Col - lo.Col}] = struct{}{}
	}
	return out, lo
}

func equal(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}

// Displacement runs the pattern for gens generations and returns how far it
// moved, or ErrNotPeriodic if it did not come back to its own shape.
func Displacement(lines []string, r Rule, gens int) (Cell, error) {
	start := ParsePattern(lines)
	if len(start) == 0 {
		return Cell{}, ErrNotPeriodic
	}
	s0, o0 := normalize(start)
	g := start
	for range gens {
		g = Step(g, r)
	}
	s1, o1 := normalize(g)
	if !equal(s0, s1) {
		return Cell{}, ErrNotPeriodic
	}
	return Cell{o1.Row - o0.Row, o1.Col - o0.Col}, nil
}

func joinLines(lines []string) string { return strings.Join(lines, "\n") }
