package clockticks

import (
	"sync"
	"testing"

	"github.com/shoenig/test/must"
)

func Test_PerSecond(t *testing.T) {
	ticks, err := PerSecond()
	must.NoError(t, err)
	must.Positive(t, ticks)
}

func Test_PerSecond_idempotent(t *testing.T) {
	first, err := PerSecond()
	must.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := PerSecond()
		must.NoError(t, err)
		must.Eq(t, first, again)
	}
}

func Test_PerSecond_concurrent(t *testing.T) {
	const n = 16

	values := make([]int64, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = PerSecond()
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		must.NoError(t, errs[i])
		must.Eq(t, values[0], values[i])
	}
}
