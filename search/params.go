package search

import (
	"fmt"

	"github.com/forestrie/go-shipsearch/phases"
	"github.com/forestrie/go-shipsearch/rule"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultDepthLimit bounds the search when no limit is configured.
	DefaultDepthLimit = 2000

	// MinDumpPeriod is the smallest accepted dump period exponent.
	MinDumpPeriod = 20

	maxDumpPeriod = 63
)

// Params are the user facing search parameters. Depth related fields are
// given in rows below the 2P row prefix; New normalizes them to absolute
// depths, and a Snapshot always carries the normalized values.
type Params struct {
	Rule     rule.Rule     `yaml:"rule" validate:"required"`
	Width    int           `yaml:"width" validate:"min=1,max=10"`
	Period   int           `yaml:"period" validate:"min=2,max=30"`
	Offset   int           `yaml:"offset" validate:"min=1,ltfield=Period"`
	Symmetry rule.Symmetry `yaml:"symmetry" validate:"min=1,max=4"`

	DepthLimit int `yaml:"depth_limit" validate:"min=0"`
	MaxLength  int `yaml:"max_length" validate:"min=0"`
	FullPeriod int `yaml:"full_period" validate:"min=0"`
	FullWidth  int `yaml:"full_width" validate:"min=0"`

	// NumShips is the number of ships to find. Zero searches until the
	// space is exhausted.
	NumShips int `yaml:"ships" validate:"min=0"`

	InitRows bool `yaml:"-"`
	Reorder  bool `yaml:"reorder"`

	// DumpPeriod dumps state every 2^DumpPeriod calculations. Zero never
	// dumps periodically.
	DumpPeriod int `yaml:"dump_period" validate:"min=0,max=63"`
}

// DefaultParams returns Life, reordered candidates, one ship and the
// default depth limit. Geometry fields are left for the caller.
func DefaultParams() Params {
	return Params{
		Rule:       rule.Life,
		Symmetry:   rule.Even,
		DepthLimit: DefaultDepthLimit,
		NumShips:   1,
		Reorder:    true,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	return nil
}

// normalize converts user facing depths to absolute depths. It must be
// applied exactly once, to fresh parameters.
func (p Params) normalize() Params {
	pp := 2 * p.Period
	if p.MaxLength > 0 {
		p.DepthLimit = p.MaxLength + pp
	}
	p.DepthLimit += pp
	if p.FullPeriod > 0 {
		p.FullPeriod += pp - 1
	}
	return p.clamp()
}

// clamp drops constraints that cannot apply. It is idempotent and is
// re-applied to resumed parameters.
func (p Params) clamp() Params {
	if phases.GCD(p.Period, p.Offset) == 1 {
		p.FullPeriod = 0
	}
	if p.FullWidth > p.Width {
		p.FullWidth = 0
	}
	if p.DumpPeriod > 0 && p.DumpPeriod < MinDumpPeriod {
		p.DumpPeriod = MinDumpPeriod
	}
	if p.DumpPeriod > maxDumpPeriod {
		p.DumpPeriod = maxDumpPeriod
	}
	return p
}

// fullWidthMask selects the columns at and above FullWidth.
func (p Params) fullWidthMask() uint16 {
	if p.FullWidth <= 0 || p.FullWidth >= p.Width {
		return 0
	}
	return uint16((1<<p.Width)-1) &^ uint16((1<<p.FullWidth)-1)
}

func (p Params) dumpMask() uint64 {
	if p.DumpPeriod <= 0 {
		return ^uint64(0)
	}
	return (uint64(1) << p.DumpPeriod) - 1
}
