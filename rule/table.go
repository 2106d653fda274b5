package rule

import "math/bits"

// Table maps a packed 3x3 neighborhood to the next state of its center cell.
//
// Bit 8 of the index is the center cell, the remaining eight bits are its
// neighbors in no particular order (every Life-like rule is totalistic).
type Table [TableSize]uint8

// NewTable builds the transition table for r.
func NewTable(r Rule) *Table {
	var t Table
	for i := range t {
		n := bits.OnesCount(uint(i & (centerBit - 1)))
		alive := i&centerBit != 0
		if (alive && r.Survives(n)) || (!alive && r.Births(n)) {
			t[i] = 1
		}
	}
	return &t
}

// NextState is the table lookup itself.
func (t *Table) NextState(packed uint32) uint8 { return t[packed&(TableSize-1)] }
