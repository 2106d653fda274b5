//go:build !unix

package search

import "time"

var processStart = time.Now()

func cpuTime() time.Duration { return time.Since(processStart) }
