package catalog

import (
	"sync"
	"time"
)

// DefaultDebounce is the pause after which search-as-you-type recomputes.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid query updates: fn fires with the latest query
// once updates pause for the configured delay. An empty query cancels any
// pending work and fires immediately, so the dropdown clears without lag.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(query string)
}

// NewDebouncer creates a Debouncer invoking fn after delay. A non-positive
// delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func(query string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Update schedules fn with the given query, replacing any pending invocation.
func (d *Debouncer) Update(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if query == "" {
		d.fn("")
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(query)
	})
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
