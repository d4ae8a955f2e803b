package fetcher

import (
	"sync"
	"time"

	"k8s.io/utils/clock"
)

const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces bursts of calls into one call after a quiet period. Each Trigger replaces the pending
// function and restarts the timer.
type Debouncer struct {
	clock clock.WithDelayedExecution
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	timer   clock.Timer
	pending func()
}

// NewDebouncer creates a debouncer. A nil clock uses the real clock and a non-positive delay uses
// DefaultDebounce.
func NewDebouncer(c clock.WithDelayedExecution, delay time.Duration) *Debouncer {
	if c == nil {
		c = clock.RealClock{}
	}

	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Debouncer{
		clock: c,
		delay: delay,
	}
}

// Trigger schedules fn to run once the delay passes with no further Trigger. An earlier pending function is
// dropped without running.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.fire(seq)
	})
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()
		return
	}

	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush runs the pending function now, if there is one. It reports whether a function ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.seq++
	d.stopLocked()
	d.mu.Unlock()

	if fn == nil {
		return false
	}

	fn()
	return true
}

// Stop drops the pending function. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	had := d.pending != nil
	d.pending = nil
	d.seq++
	d.stopLocked()
	return had
}

// Pending reports whether a call is waiting for the quiet period to elapse.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending != nil
}
