// Package clockticks resolves the scheduler tick frequency of the
// host.
package clockticks

import (
	"fmt"
	"sync"

	"github.com/tklauser/go-sysconf"
)

var (
	once    sync.Once
	ticks   int64
	tickErr error
)

// PerSecond returns the number of clock ticks per second the OS
// scheduler accounts with, as reported by sysconf(_SC_CLK_TCK). The
// value is queried once and cached for the process lifetime;
// concurrent first callers block until the single query completes and
// then all observe the same outcome. The tick frequency is a fixed
// host property, so a failed query is cached too and never retried.
func PerSecond() (int64, error) {
	once.Do(func() {
		ticks, tickErr = sysconf.Sysconf(sysconf.SC_CLK_TCK)
		if tickErr != nil {
			tickErr = fmt.Errorf("sysconf(_SC_CLK_TCK): %w", tickErr)
			return
		}
		if ticks <= 0 {
			tickErr = fmt.Errorf("sysconf(_SC_CLK_TCK) returned %d", ticks)
		}
	})
	if tickErr != nil {
		return 0, tickErr
	}
	return ticks, nil
}
