package rowindex

/*

# Inverted row transition index

The search extends a partial ship one row at a time. Given the two rows
above the new row (at the same generation) and the row the middle one must
evolve into, it needs every row that could sit below. The index answers
exactly that question by inverting row evolution over the whole row space.

## Keys

A key packs three rows of width w into 3w bits:

	key = r1<<(2w) | r2<<w | r4

where r4 is the evolution of r2 under the stack (r1, r2, r3). The index
maps each key to the list of r3 values for which the stack evolves that way.

## Layout

The index is stored in compressed sparse row form:

	starts      [2^(3w)+1]uint32   range boundaries, ordered by key
	candidates  [n]uint16          r3 values, one per legal (r1, r2, r3)

The candidates for key k are candidates[starts[k]:starts[k+1]]. Ranges are
contiguous and partition candidates. Range exposes a key's range as a
start position and a count, and Candidate reads a single position inside
it. The search records these positions in its checkpoints, so they are
stable for a given rule, width, symmetry and ordering.

The tables dominate memory use: 4·2^(3w) bytes of boundaries, which is 4GiB
at the maximum width of 10.

## Search order

Optionally each range is stably sorted by how often its rows appear as an
evolved row anywhere in the table, most frequent first. The search consumes
a range from the end, so the empty row (whose frequency is forced to 0) is
tried first and rare rows are tried before common ones. This changes search
order only, never the set of candidates.

*/
