package rule

import "fmt"

// Evolver computes row evolution inside the strip for one rule, width and
// symmetry.
type Evolver struct {
	table *Table
	rule  Rule
	width int
	sym   Symmetry
}

func NewEvolver(r Rule, width int, sym Symmetry) (*Evolver, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	if !sym.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadSymmetry, int(sym))
	}
	return &Evolver{table: NewTable(r), rule: r, width: width, sym: sym}, nil
}

func (e *Evolver) Width() int         { return e.width }
func (e *Evolver) Rule() Rule         { return e.rule }
func (e *Evolver) Symmetry() Symmetry { return e.sym }

// EvolveBit returns the next state of the cell at bit shift+1 of r2, given
// the three cells at bits shift..shift+2 of each row.
func (e *Evolver) EvolveBit(r1, r2, r3 uint32, shift uint) uint8 {
	r1 >>= shift
	r2 >>= shift
	r3 >>= shift
	return e.table.NextState((r2&2)<<7 | (r1&2)<<6 | (r1&4)<<4 | (r2&4)<<3 |
		(r3&7)<<2 | (r2&1)<<1 | r1&1)
}

// EvolveRow returns the next generation of r2 given its neighbors r1 and r3.
// ok is false when the evolution would bring a cell to life outside the
// strip.
func (e *Evolver) EvolveRow(r1, r2, r3 uint32) (r4 uint32, ok bool) {
	w := uint(e.width)

	// outer edge
	if e.EvolveBit(r1, r2, r3, w-1) != 0 {
		return 0, false
	}

	var s1, s2, s3 uint32
	switch e.sym {
	case Asymmetric:
		if e.EvolveBit(r1<<2, r2<<2, r3<<2, 0) != 0 {
			return 0, false
		}
		s1, s2, s3 = r1<<1, r2<<1, r3<<1
	case Odd:
		s1, s2, s3 = r1<<1|(r1>>1)&1, r2<<1|(r2>>1)&1, r3<<1|(r3>>1)&1
	case Even:
		s1, s2, s3 = r1<<1|r1&1, r2<<1|r2&1, r3<<1|r3&1
	case Gutter:
		if e.EvolveBit(gutter(r1), gutter(r2), gutter(r3), 0) != 0 {
			return 0, false
		}
		s1, s2, s3 = r1<<1, r2<<1, r3<<1
	}

	r4 = uint32(e.EvolveBit(s1, s2, s3, 0))
	for j := uint(1); j < w; j++ {
		r4 |= uint32(e.EvolveBit(r1, r2, r3, j-1)) << j
	}
	return r4, true
}

// gutter packs the dead gutter cell between bit 0 and its mirror image.
func gutter(r uint32) uint32 {
	return (r&1)<<2 | r&1
}
