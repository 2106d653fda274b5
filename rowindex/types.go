package rowindex

import "errors"

const (
	// MaxWidth matches rule.MaxWidth.
	MaxWidth = 10

	// NoRow marks a BlankAbove entry with no legal evolution.
	NoRow = ^uint16(0)
)

var (
	ErrBadWidth      = errors.New("rowindex: width out of range")
	ErrIndexTooLarge = errors.New("rowindex: index does not fit in addressable memory")
)

// RowEvolver is the row level evolution the index inverts.
type RowEvolver interface {
	Width() int
	EvolveRow(r1, r2, r3 uint32) (uint32, bool)
}
