package reminder

import (
	"sync"
	"time"
)

// Timer calls fire every interval while enabled. It keeps ticking after
// each call until Stop.
type Timer struct {
	mu       sync.Mutex
	interval time.Duration
	enabled  bool
	stopped  bool
	timer    *time.Timer
	// generation invalidates callbacks of timers that were replaced.
	generation int
	fire       func()
}

// NewTimer creates a timer and starts it when enabled is set.
func NewTimer(interval time.Duration, enabled bool, fire func()) *Timer {
	t := &Timer{interval: interval, enabled: enabled, fire: fire}
	t.mu.Lock()
	t.restart()
	t.mu.Unlock()
	return t
}

// Running reports whether a tick is scheduled.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Interval returns the current interval.
func (t *Timer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Update applies a new interval and enabled flag. A running timer is
// re-armed with the new interval.
func (t *Timer) Update(interval time.Duration, enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	if interval == t.interval && enabled == t.enabled && (t.timer != nil) == enabled {
		return
	}
	t.interval = interval
	t.enabled = enabled
	t.restart()
}

// Stop cancels the timer. Later calls to Stop or Update do nothing.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.cancel()
}

// restart must be called with mu held.
func (t *Timer) restart() {
	t.cancel()
	if !t.enabled || t.interval <= 0 {
		return
	}
	t.generation++
	gen := t.generation
	t.timer = time.AfterFunc(t.interval, func() { t.tick(gen) })
}

// cancel must be called with mu held.
func (t *Timer) cancel() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
}

func (t *Timer) tick(gen int) {
	t.mu.Lock()
	if t.stopped || gen != t.generation {
		t.mu.Unlock()
		return
	}
	// Re-arm before firing so a slow popup does not delay the next tick.
	t.restart()
	t.mu.Unlock()

	t.fire()
}
