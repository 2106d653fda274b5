package rowindex

// Index is the read-only inverted transition table for one rule, width and
// symmetry. It is safe to share between readers once built.
type Index struct {
	width int

	starts     []uint32
	candidates []uint16

	// blankAbove[r2<<w|r3] is the evolution of r2 with an empty row above.
	blankAbove []uint16
}

func (x *Index) Width() int { return x.width }

// Len returns the total number of candidates across all keys.
func (x *Index) Len() int { return len(x.candidates) }

// Key packs three rows into a key.
func (x *Index) Key(r1, r2, r4 uint16) uint32 {
	w := uint(x.width)
	return uint32(r1)<<(2*w) | uint32(r2)<<w | uint32(r4)
}

// Range returns the first candidate position and the candidate count for
// key.
func (x *Index) Range(key uint32) (start, count uint32) {
	start = x.starts[key]
	return start, x.starts[key+1] - start
}

// Empty reports whether key has no candidates.
func (x *Index) Empty(key uint32) bool {
	return x.starts[key] == x.starts[key+1]
}

// Candidate returns the candidate at pos, a position inside some range
// previously returned by Range.
func (x *Index) Candidate(pos uint32) uint16 { return x.candidates[pos] }

// Candidates returns the candidates for key. The slice aliases the index and
// must not be modified.
func (x *Index) Candidates(key uint32) []uint16 {
	start, count := x.Range(key)
	return x.candidates[start : start+count : start+count]
}

// BlankAbove returns the evolution of r2 under an empty row and r3, and
// false when that stack has no legal evolution.
func (x *Index) BlankAbove(r2, r3 uint16) (uint16, bool) {
	v := x.blankAbove[int(r2)<<x.width|int(r3)]
	return v, v != NoRow
}
