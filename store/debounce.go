package store

import (
	"sync"
	"time"
)

// debouncer coalesces a burst of calls into a single fire of the last
// submitted value once the burst has been quiet for wait. Continuous calls
// cannot postpone the fire past maxWait from the first pending call: a call
// arriving after that flushes synchronously instead of re-arming the timer.
type debouncer struct {
	wait    time.Duration
	maxWait time.Duration
	fire    func(value string)

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	first   time.Time
	last    string
}

func newDebouncer(wait, maxWait time.Duration, fire func(string)) *debouncer {
	return &debouncer{wait: wait, maxWait: maxWait, fire: fire}
}

func (d *debouncer) call(value string) {
	d.mu.Lock()
	now := time.Now()
	d.last = value
	overdue := d.pending && now.Sub(d.first) >= d.maxWait
	if !d.pending {
		d.pending = true
		d.first = now
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if overdue {
		d.pending = false
		d.mu.Unlock()
		d.fire(value)
		return
	}
	d.timer = time.AfterFunc(d.wait, d.flush)
	d.mu.Unlock()
}

// flush fires the pending value now, if there is one. Used by the timer and
// by teardown paths that must not drop a pending write.
func (d *debouncer) flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	value := d.last
	d.pending = false
	d.mu.Unlock()
	d.fire(value)
}
