package rule

/*

# Life-like rules and row evolution

This package holds the per-rule single cell transition table and the row
level evolution the search is built on.

A rule is a birth/survival bitmask over neighbor counts 0..8. The table is a
fixed 512 entry lookup from a packed 3x3 neighborhood to the next state of
the center cell, built once per rule.

## Rows

A row is the half-width cross section of the strip, at most 10 bits. Bit 0 is
the cell nearest the symmetry axis (or the left edge, for asymmetric
searches) and bit width-1 is the outermost cell.

EvolveRow takes three vertically stacked rows and returns the next generation
of the middle one:

	r1   . o . o o .
	r2   o o . . o .   ->  r4 (next generation of r2)
	r3   . . o . . o

The cells just outside the strip are fixed by the symmetry:

- the cell beyond the outermost bit is always dead, and must stay dead
- asymmetric: the cell beyond bit 0 is dead and must stay dead
- odd: bit 0 is on the axis, so its inner neighbor is bit 1
- even: the axis lies between bit 0 and its mirror, so its inner neighbor is bit 0
- gutter: a dead column separates bit 0 from its mirror, and must stay dead

When any of the "must stay dead" cells would be born, the stack has no
legal evolution inside the strip.

*/
