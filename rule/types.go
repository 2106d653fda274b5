package rule

import "errors"

const (
	// MaxWidth is the widest supported row.
	MaxWidth = 10

	// TableSize is the number of packed 3x3 neighborhoods.
	TableSize = 1 << 9

	survivalShift = 9
	centerBit     = 1 << 8
)

// Rule is a birth/survival bitmask. Bits 0-8 are births on n neighbors, bits
// 9-17 survivals on n neighbors.
type Rule uint32

// Life is B3/S23.
const Life Rule = 1<<3 | 1<<(survivalShift+2) | 1<<(survivalShift+3)

// Symmetry selects how the strip edge at bit 0 is closed.
type Symmetry int

const (
	Asymmetric Symmetry = 1
	Odd        Symmetry = 2
	Even       Symmetry = 3
	Gutter     Symmetry = 4
)

var (
	ErrBadRule     = errors.New("rule: invalid rule string")
	ErrBadSymmetry = errors.New("rule: invalid symmetry")
	ErrBadWidth    = errors.New("rule: width out of range")
)
