// ABOUTME: Count-up rest stopwatch that stops itself at a limit.
// ABOUTME: Run drives it from a ticker until the limit or context cancellation.
package resttimer

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultLimit is the rest period used when none is given.
const DefaultLimit = 90 * time.Second

// Timer counts whole seconds up to Limit.
type Timer struct {
	mu       sync.Mutex
	limit    int
	secs     int
	active   bool
	interval time.Duration
}

// New returns a stopped timer. A non-positive limit uses DefaultLimit.
func New(limit time.Duration) *Timer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	secs := int(limit / time.Second)
	if secs < 1 {
		secs = 1
	}
	return &Timer{limit: secs, interval: time.Second}
}

// Start zeroes the count and starts counting.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.secs = 0
	t.active = true
}

// Stop pauses counting and keeps the count.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = false
}

// Reset stops and zeroes the count.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = false
	t.secs = 0
}

// Tick advances one second while active. Reaching the limit stops the timer.
// It reports whether the timer is still running.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return false
	}
	if t.secs < t.limit {
		t.secs++
	}
	if t.secs >= t.limit {
		t.active = false
	}
	return t.active
}

// Active reports whether the timer is counting.
func (t *Timer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Seconds is the current count.
func (t *Timer) Seconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.secs
}

// Limit is the stopping point in seconds.
func (t *Timer) Limit() int {
	return t.limit
}

// Fraction is the share of the limit elapsed, in [0, 1].
func (t *Timer) Fraction() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return float64(min(t.secs, t.limit)) / float64(t.limit)
}

// Run starts the timer and ticks it until it reaches its limit or ctx is
// done. onTick, if set, receives the count after every tick.
func (t *Timer) Run(ctx context.Context, onTick func(secs int)) error {
	t.Start()
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-ticker.C:
			running := t.Tick()
			if onTick != nil {
				onTick(t.Seconds())
			}
			if !running {
				return nil
			}
		}
	}
}

// Format renders seconds as mm:ss.
func Format(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
