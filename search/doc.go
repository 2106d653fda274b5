// Package search is the depth first spaceship search.
//
// The search fills a column of rows, one per depth. The row at depth d is
// phase d mod P of the ship; rows P apart are vertically adjacent cells of
// the same generation. The first 2P rows are a fixed prefix. Each candidate
// for the row at depth d comes from the transition index entry for the two
// rows above it in its generation and the row it must evolve into, and is
// pruned by a chain of filters and a three step lookahead before the search
// goes deeper. A ship closes when 2P consecutive empty rows follow a
// non-empty partial.
//
// The Engine is resumable: Snapshot captures its state at any point between
// calculations and Resume continues from it.
package search
