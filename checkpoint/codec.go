package checkpoint

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/forestrie/go-shipsearch/rule"
	"github.com/forestrie/go-shipsearch/search"
)

// Version identifies the dump layout.
const Version = 2016122101

// Encode writes snap in the dump layout.
func Encode(w io.Writer, snap search.Snapshot) error {
	bw := bufio.NewWriter(w)
	put := func(v int64) { bw.WriteString(strconv.FormatInt(v, 10)); bw.WriteByte('\n') }
	flag := func(b bool) {
		if b {
			put(1)
			return
		}
		put(0)
	}

	p := snap.Params
	put(Version)
	put(int64(p.Rule))
	put(int64(p.Width))
	put(int64(p.Period))
	put(int64(p.Offset))
	put(int64(p.DepthLimit))
	put(int64(p.Symmetry))
	put(int64(p.MaxLength))
	flag(p.InitRows)
	put(int64(p.FullPeriod))
	put(int64(p.NumShips))
	put(int64(p.FullWidth))
	flag(p.Reorder)
	put(int64(p.DumpPeriod))

	put(int64(snap.FirstFull))
	put(int64(len(snap.LastNonempty)))
	for _, b := range snap.LastNonempty {
		put(int64(b))
	}
	put(int64(snap.Depth))

	pp := 2 * p.Period
	if len(snap.Rows) < max(snap.Depth+1, pp) {
		return fmt.Errorf("%w: %d rows for depth %d", ErrMalformed, len(snap.Rows), snap.Depth)
	}
	for i := 0; i < pp; i++ {
		put(int64(snap.Rows[i]))
	}
	for i := pp; i <= snap.Depth; i++ {
		put(int64(snap.Rows[i]))
		put(int64(snap.Starts[i]))
		put(int64(snap.Remain[i]))
	}
	return bw.Flush()
}

type reader struct {
	sc  *bufio.Scanner
	err error
}

// next reads one integer in [lo, hi]. After the first failure it keeps
// returning zero and the first error is kept.
func (r *reader) next(what string, lo, hi int64) int64 {
	if r.err != nil {
		return 0
	}
	if !r.sc.Scan() {
		r.err = fmt.Errorf("%w: missing %s", ErrMalformed, what)
		if err := r.sc.Err(); err != nil {
			r.err = fmt.Errorf("%w: reading %s: %v", ErrMalformed, what, err)
		}
		return 0
	}
	v, err := strconv.ParseInt(r.sc.Text(), 10, 64)
	if err != nil || v < lo || v > hi {
		r.err = fmt.Errorf("%w: %s %q", ErrMalformed, what, r.sc.Text())
		return 0
	}
	return v
}

func (r *reader) flag(what string) bool { return r.next(what, 0, 1) == 1 }

// maxDepth bounds the depths a dump may declare.
const maxDepth = 1 << 24

// Decode reads a dump. It either returns the complete snapshot or an error
// wrapping ErrVersion or ErrMalformed.
func Decode(rd io.Reader) (search.Snapshot, error) {
	r := &reader{sc: bufio.NewScanner(rd)}
	r.sc.Split(bufio.ScanWords)

	if v := r.next("version", 0, 1<<62); r.err == nil && v != Version {
		return search.Snapshot{}, fmt.Errorf("%w: %d", ErrVersion, v)
	}

	var snap search.Snapshot
	p := &snap.Params
	p.Rule = rule.Rule(r.next("rule", 0, 1<<18-1))
	p.Width = int(r.next("width", 1, rule.MaxWidth))
	p.Period = int(r.next("period", 1, 30))
	p.Offset = int(r.next("offset", 0, 30))
	p.DepthLimit = int(r.next("depth limit", 0, maxDepth))
	p.Symmetry = rule.Symmetry(r.next("symmetry", 0, 4))
	p.MaxLength = int(r.next("max length", 0, maxDepth))
	// older writers store the position of the rows file argument here
	p.InitRows = r.next("initial rows", 0, 1<<31-1) != 0
	p.FullPeriod = int(r.next("full period", 0, maxDepth))
	// an unlimited search counts down past zero
	p.NumShips = max(int(r.next("ships", -(1<<31), 1<<31-1)), 0)
	p.FullWidth = int(r.next("full width", 0, rule.MaxWidth))
	p.Reorder = r.flag("reorder flag")
	p.DumpPeriod = int(r.next("dump period", 0, 63))

	snap.FirstFull = int(r.next("first full period depth", 0, maxDepth))
	n := int(r.next("ship count", 0, maxDepth))
	for i := 0; i < n && r.err == nil; i++ {
		snap.LastNonempty = append(snap.LastNonempty, int(r.next("ship boundary", -1, maxDepth)))
	}
	snap.Depth = int(r.next("depth", 0, maxDepth))
	if r.err != nil {
		return search.Snapshot{}, r.err
	}

	pp := 2 * p.Period
	if snap.Depth < pp-1 {
		return search.Snapshot{}, fmt.Errorf("%w: depth %d inside the row prefix", ErrMalformed, snap.Depth)
	}
	rowLimit := int64(1)<<p.Width - 1
	size := max(snap.Depth+1, pp)
	snap.Rows = make([]uint16, size)
	snap.Starts = make([]uint32, size)
	snap.Remain = make([]uint32, size)
	for i := 0; i < pp; i++ {
		snap.Rows[i] = uint16(r.next("prefix row", 0, rowLimit))
	}
	for i := pp; i <= snap.Depth && r.err == nil; i++ {
		snap.Rows[i] = uint16(r.next("row", 0, rowLimit))
		snap.Starts[i] = uint32(r.next("range start", 0, 1<<32-1))
		snap.Remain[i] = uint32(r.next("range remaining", 0, 1<<32-1))
	}
	if r.err != nil {
		return search.Snapshot{}, r.err
	}
	return snap, nil
}
