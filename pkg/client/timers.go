package client

import (
	"sync"
	"time"
)

// timers tracks AfterFunc callbacks so owners can wait for running ones on
// Close. arm and stop must be called with the owner's lock held.
type timers struct {
	wg sync.WaitGroup
}

func (ts *timers) arm(t **time.Timer, d time.Duration, fn func()) {
	ts.stop(t)
	ts.wg.Add(1)
	*t = time.AfterFunc(d, func() {
		defer ts.wg.Done()
		fn()
	})
}

func (ts *timers) stop(t **time.Timer) {
	if *t != nil && (*t).Stop() {
		ts.wg.Done()
	}
	*t = nil
}

func (ts *timers) wait() {
	ts.wg.Wait()
}
