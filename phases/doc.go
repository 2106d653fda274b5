// Package phases derives the per-phase row offsets the search uses to find
// the rows a new row depends on.
//
// Search rows are numbered by depth. Rows period apart are vertically
// adjacent cells of the same generation; the phase of a row is its depth mod
// period. For a ship moving offset cells every period generations the next
// generation of a row is not the adjacent depth, so each phase records the
// distance to the row it evolves from (Back), the inverse (Fwd), and the
// compositions two and three steps along the chain (Double, Triple).
package phases
