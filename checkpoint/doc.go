// Package checkpoint reads and writes search state dumps.
//
// A dump is a sequence of decimal integers separated by whitespace, one per
// line when written. The layout is: the format version; the thirteen search
// parameters (rule, width, period, offset, depth limit, symmetry, max
// length, initial rows flag, full period, ships remaining, full width,
// reorder flag, dump period), all normalized; the first full period depth;
// the number of closed ships followed by the ship boundary depth of each;
// the current depth; the 2P prefix rows; and a row, range start, range
// remaining triple for every depth from 2P to the current depth.
//
// Dumps are written to numbered files (dump0001 to dump9999) that are never
// overwritten.
package checkpoint
