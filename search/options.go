package search

import (
	"io"

	"github.com/forestrie/go-shipsearch/rowindex"
)

type engineOptions struct {
	index       *rowindex.Index
	out         io.Writer
	dumper      Dumper
	calcLimit   uint64
	initialRows []uint16
}

type Option func(*engineOptions)

// WithIndex supplies a prebuilt transition index. It must have been built
// for the same rule, width and symmetry as the search.
func WithIndex(idx *rowindex.Index) Option {
	return func(o *engineOptions) { o.index = idx }
}

// WithOutput directs ship and progress reports to w. Reports are discarded
// by default.
func WithOutput(w io.Writer) Option {
	return func(o *engineOptions) { o.out = w }
}

// WithDumper enables periodic and requested state dumps.
func WithDumper(d Dumper) Option {
	return func(o *engineOptions) { o.dumper = d }
}

// WithCalcLimit suspends the run once n calculations have been made in
// total.
func WithCalcLimit(n uint64) Option {
	return func(o *engineOptions) { o.calcLimit = n }
}

// WithInitialRows seeds the 2P row prefix instead of the blank one. Only
// used by New.
func WithInitialRows(rows []uint16) Option {
	return func(o *engineOptions) { o.initialRows = rows }
}
