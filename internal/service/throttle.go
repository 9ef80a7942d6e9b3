package service

import (
	"sync"
	"time"
)

// Throttle enforces a minimum delay between consecutive calls to one
// upstream provider. The delay is global across all callers, not per key;
// waiters serialize on the mutex without any FIFO guarantee.
type Throttle struct {
	mu    sync.Mutex
	delay time.Duration
	last  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewThrottle(delay time.Duration) *Throttle {
	return &Throttle{
		delay: delay,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// NewThrottleWithClock builds a throttle with an injected clock for tests.
func NewThrottleWithClock(delay time.Duration, now func() time.Time, sleep func(time.Duration)) *Throttle {
	return &Throttle{
		delay: delay,
		now:   now,
		sleep: sleep,
	}
}

// Wait blocks until the minimum delay since the previous call has elapsed
// and records the call.
func (t *Throttle) Wait() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		if elapsed := t.now().Sub(t.last); elapsed < t.delay {
			t.sleep(t.delay - elapsed)
		}
	}
	t.last = t.now()
}
