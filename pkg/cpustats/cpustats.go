// Package cpustats reports aggregate host CPU time split between user
// and kernel mode.
package cpustats

import (
	"fmt"
	"time"
)

// CPUStats holds aggregate CPU time accumulated since boot.
type CPUStats struct {
	// User is time spent executing normal processes in user mode.
	User time.Duration `json:"user"`
	// System is time spent executing processes in kernel mode.
	System time.Duration `json:"system"`
}

// coreTicks is one per-core record as reported by the OS, in the fixed
// (user, system, idle, nice) order.
type coreTicks struct {
	User   int64
	System int64
	Idle   int64
	Nice   int64
}

// sumCores reduces per-core records to machine-wide user and system
// totals. Idle and nice are discarded. A negative counter means the
// read went wrong and is rejected rather than folded into a total.
func sumCores(cores []coreTicks) (user, system uint64, err error) {
	for i, c := range cores {
		if c.User < 0 || c.System < 0 {
			return 0, 0, fmt.Errorf("negative tick count for cpu %d: user=%d system=%d", i, c.User, c.System)
		}
		user += uint64(c.User)
		system += uint64(c.System)
	}
	return user, system, nil
}

// ticksToDuration converts a raw tick counter to a duration as
// seconds(raw) / ticksPerSec. Treating the counter as whole seconds
// before dividing by the tick frequency mirrors the historical
// behavior of this library; the result is approximate and callers
// should treat it as such. Computed as a whole-second quotient plus a
// nanosecond remainder so large counters cannot overflow.
func ticksToDuration(raw uint64, ticksPerSec int64) time.Duration {
	t := uint64(ticksPerSec)
	secs := raw / t
	rem := raw % t
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/t)
}
