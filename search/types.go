package search

import (
	"errors"
	"time"
)

var (
	ErrBadParams      = errors.New("search: invalid parameters")
	ErrBadSnapshot    = errors.New("search: snapshot inconsistent with its parameters")
	ErrNoInitialRows  = errors.New("search: initial rows required")
	ErrBadInitialRows = errors.New("search: malformed initial rows")
	ErrIndexMismatch  = errors.New("search: index built for a different width")
)

// Status is the reason a search run ended.
type Status int

const (
	// Complete means the search space below the prefix is exhausted.
	Complete Status = iota
	// ShipLimit means the requested number of ships was found.
	ShipLimit
	// DepthLimit means a partial reached the depth limit without closing.
	DepthLimit
	// Suspended means the run was stopped by a calculation limit or an
	// interrupt and can be continued from a Snapshot.
	Suspended
)

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case ShipLimit:
		return "ship limit"
	case DepthLimit:
		return "depth limit"
	case Suspended:
		return "suspended"
	}
	return "unknown"
}

// Result summarizes one Run.
type Result struct {
	Status Status
	Ships  []Pattern

	// Depth is the final depth below the row prefix.
	Depth int

	// Calcs is the cumulative calculation count, including calculations
	// made before a resume.
	Calcs   uint64
	CPUTime time.Duration
}

// Dumper persists snapshots. Implementations return the name of what they
// wrote.
type Dumper interface {
	Dump(snap Snapshot) (string, error)
}

// Snapshot is the resumable state of an Engine.
type Snapshot struct {
	// Params are normalized.
	Params Params

	FirstFull    int
	LastNonempty []int
	Depth        int

	// Rows holds rows 0..Depth, and always at least the 2P prefix rows.
	Rows []uint16

	// Starts and Remain are indexed by depth like Rows. Entries below 2P
	// are unused.
	Starts []uint32
	Remain []uint32

	Calcs uint64
}
