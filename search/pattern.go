package search

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-shipsearch/rule"
)

// Pattern is one generation of a ship or partial, one line per cell row,
// 'o' for live cells and '.' for dead ones. Symmetric patterns include the
// mirrored half.
type Pattern struct {
	Lines  []string
	Length int
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, l := range p.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Length: %d", p.Length)
	return b.String()
}

func (e *Engine) render(rows []uint16, depth int) Pattern {
	return renderRows(e.p, rows, depth)
}

// RenderSnapshot draws the committed rows of a snapshot.
func RenderSnapshot(snap Snapshot) Pattern {
	return renderRows(snap.Params, snap.Rows, snap.Depth)
}

// renderRows draws the rows below depth. Rows P apart are adjacent cell
// rows of the same generation.
func renderRows(params Params, rows []uint16, depth int) Pattern {
	P := params.Period
	first := 2 * P
	if params.InitRows {
		first = 0
	}
	last := min(depth, len(rows)) - 1
	for last >= 0 && rows[last] == 0 {
		last--
	}

	p := Pattern{Length: max(last-2*P+1, 0)}
	for i := first; i <= last; i += P {
		p.Lines = append(p.Lines, RenderRow(rows[i], params.Width, params.Symmetry))
	}
	return p
}

// RenderRow draws a row with bit 0 at the symmetry axis.
func RenderRow(row uint16, width int, sym rule.Symmetry) string {
	cell := func(j int) byte {
		if row>>j&1 != 0 {
			return 'o'
		}
		return '.'
	}

	var b strings.Builder
	for j := width - 1; j >= 0; j-- {
		b.WriteByte(cell(j))
	}
	if sym == rule.Asymmetric {
		return b.String()
	}
	if sym == rule.Gutter {
		b.WriteByte('.')
	}
	if sym != rule.Odd {
		b.WriteByte(cell(0))
	}
	for j := 1; j < width; j++ {
		b.WriteByte(cell(j))
	}
	return b.String()
}
