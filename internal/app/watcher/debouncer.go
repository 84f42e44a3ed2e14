package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debouncer coalesces a burst of file operations into a single callback after a quiet period
type Debouncer interface {
	Trigger(op fsnotify.Op)
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	duration time.Duration
	callback func(ops fsnotify.Op)
	timer    *time.Timer
	ops      fsnotify.Op
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a new Debouncer with the specified duration and callback
func NewDebouncer(duration time.Duration, callback func(ops fsnotify.Op)) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
	}
}

// Trigger records an operation and restarts the quiet period
func (d *debouncer) Trigger(op fsnotify.Op) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.ops |= op

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
}

// Stop stops the debouncer and drops any pending callback
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.ops = 0
}

// fire runs the callback with the accumulated operations
func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped || d.ops == 0 {
		d.mu.Unlock()
		return
	}

	ops := d.ops
	d.ops = 0
	d.timer = nil

	d.mu.Unlock()

	d.callback(ops)
}
