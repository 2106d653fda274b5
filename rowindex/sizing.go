package rowindex

import (
	"fmt"
	"math"
)

// KeyCount returns 2^(3w), the number of distinct keys.
func KeyCount(width int) uint64 {
	return uint64(1) << (3 * uint(width))
}

// StartsBytes returns the size of the range boundary table.
func StartsBytes(width int) uint64 {
	return (KeyCount(width) + 1) * 4
}

// CandidatesBytesMax returns the size of the candidate table when every
// triple has a legal evolution. The real table is usually much smaller.
func CandidatesBytesMax(width int) uint64 {
	return KeyCount(width) * 2
}

// CheckWidth validates width and that the tables for it can be indexed by
// int and by the uint32 range boundaries.
func CheckWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("%w: %d", ErrBadWidth, width)
	}
	need := StartsBytes(width) + CandidatesBytesMax(width)
	if need > math.MaxInt || KeyCount(width) > math.MaxUint32 {
		return fmt.Errorf("%w: width %d needs up to %d bytes", ErrIndexTooLarge, width, need)
	}
	return nil
}
