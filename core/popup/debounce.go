package popup

import (
	"sync"
	"time"
)

// Debouncer runs the most recent callback once calls have been quiet for wait.
// Each Trigger supersedes the previous one.
type Debouncer struct {
	mu    sync.Mutex
	clock Clock
	wait  time.Duration
	timer Timer
	gen   uint64
}

// NewDebouncer creates a debouncer on clock
func NewDebouncer(clock Clock, wait time.Duration) *Debouncer {
	return &Debouncer{clock: clock, wait: wait}
}

// Trigger (re)starts the quiet period and replaces the pending callback with f
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen

	d.timer = d.clock.AfterFunc(d.wait, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		// a superseded timer may fire if Stop lost the race
		if current {
			f()
		}
	})
}

// Cancel drops the pending callback, if any
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
