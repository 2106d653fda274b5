package rowindex

import (
	"cmp"
	"slices"
)

type buildOptions struct {
	reorder bool
}

type BuildOption func(*buildOptions)

// WithReorder sorts each range so the rarest rows are tried first by the
// search. Enabled by default.
func WithReorder(reorder bool) BuildOption {
	return func(o *buildOptions) { o.reorder = reorder }
}

// Build inverts ev over every triple of rows.
//
// The first pass counts, per (r1, r2, r4) key, how many r3 rows evolve that
// way. Prefix sums of the counts give each key's range end; the second pass
// walks the triples again and fills each range from the back, which leaves
// every boundary at its range start.
func Build(ev RowEvolver, opts ...BuildOption) (*Index, error) {
	o := buildOptions{reorder: true}
	for _, opt := range opts {
		opt(&o)
	}

	width := ev.Width()
	if err := CheckWidth(width); err != nil {
		return nil, err
	}
	w := uint(width)
	rows := uint32(1) << w
	keys := KeyCount(width)

	x := &Index{
		width:      width,
		starts:     make([]uint32, keys+1),
		blankAbove: make([]uint16, uint64(rows)*uint64(rows)),
	}
	for i := range x.blankAbove {
		x.blankAbove[i] = NoRow
	}
	freq := make([]uint32, rows)

	var valid uint32
	forEachTriple(ev, rows, w, func(r1, r2, r3, r4, key uint32) {
		freq[r4]++
		if r1 == 0 {
			x.blankAbove[r2<<w|r3] = uint16(r4)
		}
		x.starts[key]++
		valid++
	})

	for k := uint64(1); k < keys; k++ {
		x.starts[k] += x.starts[k-1]
	}
	x.starts[keys] = x.starts[keys-1]

	x.candidates = make([]uint16, valid)
	forEachTriple(ev, rows, w, func(r1, r2, r3, r4, key uint32) {
		x.starts[key]--
		x.candidates[x.starts[key]] = uint16(r3)
	})

	if o.reorder {
		freq[0] = 0
		for k := uint64(0); k < keys; k++ {
			r := x.candidates[x.starts[k]:x.starts[k+1]]
			slices.SortStableFunc(r, func(a, b uint16) int {
				return cmp.Compare(freq[b], freq[a])
			})
		}
	}
	return x, nil
}

// forEachTriple calls fn for every (r1, r2, r3) in enumeration order that
// has a legal evolution, passing the evolved row r4 and its key.
func forEachTriple(ev RowEvolver, rows uint32, w uint, fn func(r1, r2, r3, r4, key uint32)) {
	for r1 := uint32(0); r1 < rows; r1++ {
		for r2 := uint32(0); r2 < rows; r2++ {
			for r3 := uint32(0); r3 < rows; r3++ {
				r4, ok := ev.EvolveRow(r1, r2, r3)
				if !ok {
					continue
				}
				fn(r1, r2, r3, r4, r1<<(2*w)|r2<<w|r4)
			}
		}
	}
}
