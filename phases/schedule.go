package phases

import (
	"errors"
	"fmt"
)

// MaxPeriod is the longest supported period.
const MaxPeriod = 30

var (
	ErrBadPeriod = errors.New("phases: period out of range")
	ErrBadOffset = errors.New("phases: offset must be in [1, period)")
)

// Schedule holds the phase offset tables for one period and offset.
type Schedule struct {
	Period int
	Offset int

	Fwd    []int
	Back   []int
	Double []int
	Triple []int
}

// NewSchedule builds the offset tables by walking the phase cycle from phase
// 0, jumping offset phases at a time and skipping phases that already have a
// successor. The last phase visited closes the cycle back to phase 0.
func NewSchedule(period, offset int) (Schedule, error) {
	if period < 1 || period > MaxPeriod {
		return Schedule{}, fmt.Errorf("%w: %d", ErrBadPeriod, period)
	}
	if offset < 1 || offset >= period {
		return Schedule{}, fmt.Errorf("%w: offset=%d period=%d", ErrBadOffset, offset, period)
	}

	s := Schedule{
		Period: period,
		Offset: offset,
		Fwd:    make([]int, period),
		Back:   make([]int, period),
		Double: make([]int, period),
		Triple: make([]int, period),
	}
	for i := range s.Back {
		s.Back[i] = -1
	}
	for i := 0; ; {
		j := offset
		for j < period && s.Back[(i+j)%period] >= 0 {
			j++
		}
		if j == period {
			s.Back[i] = period - i
			break
		}
		s.Back[i] = j
		i = (i + j) % period
	}
	for i, b := range s.Back {
		s.Fwd[(i+b)%period] = b
	}
	for i := range s.Double {
		s.Double[i] = s.Fwd[i] + s.Fwd[s.prev(i)]
	}
	for i := range s.Triple {
		s.Triple[i] = s.Fwd[i] + s.Double[s.prev(i)]
	}
	return s, nil
}

// prev returns the phase whose Back link lands on phase i.
func (s Schedule) prev(i int) int {
	j := i - s.Fwd[i]
	if j < 0 {
		j += s.Period
	}
	return j
}

// Chain returns the phases in the order the Back links visit them, starting
// at phase 0.
func (s Schedule) Chain() []int {
	chain := make([]int, 0, s.Period)
	i := 0
	for range s.Period {
		chain = append(chain, i)
		i = (i + s.Back[i]) % s.Period
	}
	return chain
}
