package search

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-shipsearch/phases"
	"github.com/forestrie/go-shipsearch/rowindex"
	"github.com/forestrie/go-shipsearch/rule"
)

type state int

const (
	advancing state = iota
	backtracking
	reporting
	terminated
)

// Engine is a single threaded depth first search for one parameter set. All
// search state lives here; Interrupt and RequestDump may be called from
// other goroutines while Run is in progress.
type Engine struct {
	log    logger.Logger
	out    io.Writer
	dumper Dumper

	p     Params
	sched phases.Schedule
	eq    phases.Equivalence
	idx   *rowindex.Index

	fullWidthMask uint16
	dumpMask      uint64
	calcLimit     uint64

	rows         []uint16
	starts       []uint32
	remain       []uint32
	lastNonempty []int
	firstFull    int
	depth        int
	phase        int

	calcs    uint64
	cpuStart time.Duration
	longest  int
	lastLong uint64
	buffered bool
	buf      []uint16
	bufDepth int
	ships    []Pattern

	dumpRequested atomic.Bool
	interrupted   atomic.Bool
}

// New prepares a fresh search. p is validated and normalized; the blank
// row prefix is used unless WithInitialRows is given.
func New(log logger.Logger, p Params, opts ...Option) (*Engine, error) {
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.initialRows != nil {
		p.InitRows = true
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.InitRows && o.initialRows == nil {
		return nil, ErrNoInitialRows
	}

	e := &Engine{log: log}
	if err := e.setup(p.normalize(), o); err != nil {
		return nil, err
	}

	pp := 2 * e.p.Period
	if p.InitRows {
		if len(o.initialRows) != pp {
			return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadInitialRows, pp, len(o.initialRows))
		}
		copy(e.rows, o.initialRows)
		key := e.idx.Key(e.rows[0], e.rows[e.p.Period], e.rows[e.p.Period+e.sched.Back[0]])
		e.starts[pp], e.remain[pp] = e.idx.Range(key)
	} else {
		// the empty row sorts last in every range and is skipped here so the
		// search cannot close on an empty pattern
		start, count := e.idx.Range(0)
		e.starts[pp] = start
		if count > 0 {
			e.remain[pp] = count - 1
		}
	}
	e.depth = pp
	e.phase = 0
	return e, nil
}

// Resume continues a search from a snapshot taken by Snapshot or decoded
// from a checkpoint.
func Resume(log logger.Logger, snap Snapshot, opts ...Option) (*Engine, error) {
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	p := snap.Params.clamp()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{log: log}
	if err := e.setup(p, o); err != nil {
		return nil, err
	}
	if err := e.checkSnapshot(snap); err != nil {
		return nil, err
	}

	copy(e.rows, snap.Rows)
	copy(e.starts, snap.Starts)
	copy(e.remain, snap.Remain)
	e.lastNonempty = append([]int(nil), snap.LastNonempty...)
	e.firstFull = snap.FirstFull
	e.depth = snap.Depth
	e.phase = snap.Depth % p.Period
	e.calcs = snap.Calcs
	return e, nil
}

func (e *Engine) setup(p Params, o engineOptions) error {
	ev, err := rule.NewEvolver(p.Rule, p.Width, p.Symmetry)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	if e.sched, err = phases.NewSchedule(p.Period, p.Offset); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	if p.DepthLimit < 2*p.Period {
		return fmt.Errorf("%w: depth limit %d below the row prefix", ErrBadParams, p.DepthLimit)
	}
	e.eq = phases.NewEquivalence(e.sched)

	e.idx = o.index
	if e.idx == nil {
		if e.idx, err = rowindex.Build(ev, rowindex.WithReorder(p.Reorder)); err != nil {
			return err
		}
	} else if e.idx.Width() != p.Width {
		return fmt.Errorf("%w: index %d, search %d", ErrIndexMismatch, e.idx.Width(), p.Width)
	}
	e.log.Debugf("transition index: width %d, %d candidates", p.Width, e.idx.Len())

	e.p = p
	e.out = o.out
	if e.out == nil {
		e.out = io.Discard
	}
	e.dumper = o.dumper
	e.calcLimit = o.calcLimit
	e.fullWidthMask = p.fullWidthMask()
	e.dumpMask = p.dumpMask()

	n := p.DepthLimit + 1
	e.rows = make([]uint16, n)
	e.starts = make([]uint32, n)
	e.remain = make([]uint32, n)
	return nil
}

func (e *Engine) checkSnapshot(snap Snapshot) error {
	p := e.p
	pp := 2 * p.Period
	if snap.Depth < pp-1 || snap.Depth > p.DepthLimit {
		return fmt.Errorf("%w: depth %d outside %d..%d", ErrBadSnapshot, snap.Depth, pp-1, p.DepthLimit)
	}
	n := max(snap.Depth+1, pp)
	if len(snap.Rows) != n || len(snap.Starts) != n || len(snap.Remain) != n {
		return fmt.Errorf("%w: want %d rows", ErrBadSnapshot, n)
	}
	limit := uint16(1) << p.Width
	for i, row := range snap.Rows {
		if row >= limit {
			return fmt.Errorf("%w: row %d wider than %d", ErrBadSnapshot, i, p.Width)
		}
	}
	for i := pp; i <= snap.Depth; i++ {
		if uint64(snap.Starts[i])+uint64(snap.Remain[i]) > uint64(e.idx.Len()) {
			return fmt.Errorf("%w: candidate range at depth %d", ErrBadSnapshot, i)
		}
	}
	for _, b := range snap.LastNonempty {
		if b < -1 || b > p.DepthLimit {
			return fmt.Errorf("%w: ship boundary %d", ErrBadSnapshot, b)
		}
	}
	if snap.FirstFull < 0 || snap.FirstFull > p.DepthLimit {
		return fmt.Errorf("%w: first full period row %d", ErrBadSnapshot, snap.FirstFull)
	}
	return nil
}

// Params returns the normalized parameters.
func (e *Engine) Params() Params { return e.p }

// Interrupt asks a running search to dump its state and stop before the
// next calculation.
func (e *Engine) Interrupt() { e.interrupted.Store(true) }

// RequestDump asks for one dump before the next calculation.
func (e *Engine) RequestDump() { e.dumpRequested.Store(true) }

// Snapshot captures the current state. It is consistent whenever Run is
// not executing.
func (e *Engine) Snapshot() Snapshot {
	n := max(e.depth+1, 2*e.p.Period)
	return Snapshot{
		Params:       e.p,
		FirstFull:    e.firstFull,
		LastNonempty: append([]int(nil), e.lastNonempty...),
		Depth:        e.depth,
		Rows:         append([]uint16(nil), e.rows[:n]...),
		Starts:       append([]uint32(nil), e.starts[:n]...),
		Remain:       append([]uint32(nil), e.remain[:n]...),
		Calcs:        e.calcs,
	}
}

// Run searches until the space is exhausted, enough ships are found, the
// depth limit is hit or the run is suspended. Ships found by this run are
// returned in the Result.
func (e *Engine) Run() Result {
	e.cpuStart = cpuTime()
	pp := 2 * e.p.Period
	e.ships = nil
	e.longest = 0

	var res Result
	st := advancing
	for st != terminated {
		switch st {
		case advancing:
			if e.interrupted.Load() {
				e.dump()
				res.Status = Suspended
				st = terminated
				continue
			}
			if e.calcLimit > 0 && e.calcs >= e.calcLimit {
				res.Status = Suspended
				st = terminated
				continue
			}
			e.tick(e.calcs + 1)
			e.calcs++
			st = e.advance()
		case backtracking:
			st = e.backtrack(&res)
		case reporting:
			st = e.report(&res)
		}
	}

	res.Ships = e.ships
	res.Depth = e.depth - pp
	res.Calcs = e.calcs
	res.CPUTime = e.elapsed()
	e.log.Infof("search %s: %d ships, depth %d, %d calculations, %v CPU",
		res.Status, len(res.Ships), res.Depth, res.Calcs, res.CPUTime.Round(time.Millisecond))
	return res
}

// advance tries the next candidate at the current depth.
func (e *Engine) advance() state {
	d := e.depth
	if e.remain[d] == 0 {
		return backtracking
	}
	e.remain[d]--
	e.rows[d] = e.idx.Candidate(e.starts[d] + e.remain[d])

	if !e.accept(d) {
		return advancing
	}
	if e.p.FullPeriod > 0 && e.firstFull == 0 && e.breaksSubPeriod(d) {
		e.firstFull = d
	}

	e.depth++
	e.phase = (e.phase + 1) % e.p.Period
	if e.depth > e.p.DepthLimit {
		return reporting
	}
	e.openRange(e.depth)
	return advancing
}

// openRange loads the candidate range for the row at depth d.
func (e *Engine) openRange(d int) {
	P := e.p.Period
	key := e.idx.Key(e.rows[d-2*P], e.rows[d-P], e.rows[d-P+e.sched.Back[d%P]])
	e.starts[d], e.remain[d] = e.idx.Range(key)
}

func (e *Engine) backtrack(res *Result) state {
	if n := len(e.lastNonempty); n > 0 && e.lastNonempty[n-1] == e.depth {
		e.lastNonempty = e.lastNonempty[:n-1]
	}
	e.depth--
	e.phase = (e.phase - 1 + e.p.Period) % e.p.Period
	if e.p.FullPeriod > 0 && e.firstFull == e.depth {
		e.firstFull = 0
	}
	if e.depth < 2*e.p.Period {
		if e.buf != nil {
			fmt.Fprintln(e.out, e.render(e.buf, e.bufDepth))
		}
		fmt.Fprintf(e.out, "Search complete: %d ships found.\n", len(e.ships))
		res.Status = Complete
		return terminated
	}
	return advancing
}

// report handles a frontier that has passed the depth limit.
func (e *Engine) report(res *Result) state {
	P := e.p.Period
	d := e.depth
	for j := 1; j <= 2*P; j++ {
		if e.rows[d-j] != 0 {
			fmt.Fprintln(e.out, e.render(e.rows, d))
			fmt.Fprintf(e.out, "Search terminated: depth limit reached.\nDepth: %d\n", d-2*P)
			res.Status = DepthLimit
			return terminated
		}
	}

	if e.p.FullPeriod == 0 || e.firstFull != 0 {
		ship := e.render(e.rows, d)
		e.ships = append(e.ships, ship)
		fmt.Fprintln(e.out, ship)
		e.log.Infof("ship %d closed, length %d", len(e.ships), ship.Length)
		if e.p.NumShips > 0 {
			e.p.NumShips--
			if e.p.NumShips == 0 {
				fmt.Fprintf(e.out, "Search terminated: %d ships found.\n", len(e.ships))
				res.Status = ShipLimit
				return terminated
			}
		}
	}

	last := d - 1
	for last >= 0 && e.rows[last] == 0 {
		last--
	}
	e.lastNonempty = append(e.lastNonempty, last)
	e.depth = last + 2*P
	e.phase = e.depth % P
	e.longest = last
	return advancing
}

func (e *Engine) dump() {
	if e.dumper == nil {
		e.log.Debugf("dump skipped: no dumper")
		return
	}
	name, err := e.dumper.Dump(e.Snapshot())
	if err != nil {
		e.log.Infof("dump failed: %v", err)
		return
	}
	e.log.Infof("state dumped to %s", name)
}
