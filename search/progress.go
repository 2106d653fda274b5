package search

import (
	"fmt"
	"time"
)

const (
	// a buffered longest partial is printed once it has stood this many
	// calculations
	progressDelay = 0xffffff
	// progress is printed at least this often
	progressMask = 0xffffffff
)

// tick runs before calculation n is made. It handles dumps and progress
// reports.
func (e *Engine) tick(n uint64) {
	requested := e.dumpRequested.Swap(false)
	if n&e.dumpMask == 0 || requested {
		e.dump()
	}

	if e.depth > e.longest {
		e.buf = append(e.buf[:0], e.rows[:e.depth]...)
		e.bufDepth = e.depth
		e.buffered = true
		e.lastLong = n
		e.longest = e.depth
	}
	if (e.buffered && n-e.lastLong > progressDelay) || n&progressMask == 0 {
		e.printProgress(n)
		e.buffered = false
	}
}

func (e *Engine) printProgress(n uint64) {
	if e.buf != nil {
		fmt.Fprintln(e.out, e.render(e.buf, e.bufDepth))
	}
	fmt.Fprintf(e.out, "Depth: %d\nCalculations: %d\nCPU time: %v\n",
		e.bufDepth-2*e.p.Period, n, e.elapsed())
	e.log.Debugf("progress: longest %d, calculations %d", e.longest-2*e.p.Period, n)
}

// elapsed is the CPU time used since Run started.
func (e *Engine) elapsed() time.Duration { return cpuTime() - e.cpuStart }
