// Package timer implements the cancellable pause a cooking session sits
// in between two steps.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// DefaultDwell is how long the kitchen lingers on an encouragement.
const DefaultDwell = 1500 * time.Millisecond

// Dwell runs at most one delayed callback at a time. Starting a new wait
// replaces the pending one; a wait that fires after Stop has no effect.
type Dwell struct {
	log *logger.Logger

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewDwell creates an idle dwell.
func NewDwell(log *logger.Logger) *Dwell {
	return &Dwell{log: log}
}

// Start schedules fn to run after wait. Non-blocking. fn runs on its own
// goroutine and is skipped if ctx is cancelled or Stop is called first.
func (d *Dwell) Start(ctx context.Context, wait time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		d.log.Warn("dwell replaced while pending")
		d.cancel()
	}

	childCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.gen++

	go d.wait(childCtx, d.gen, wait, fn)
	d.log.Debug("dwell started (%s)", wait)
}

// Stop cancels the pending wait, if any, and reports whether there was one.
func (d *Dwell) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.cancel == nil {
		return false
	}
	d.cancel()
	d.cancel = nil
	d.log.Debug("dwell stopped")
	return true
}

// Active reports whether a wait is pending.
func (d *Dwell) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

func (d *Dwell) wait(ctx context.Context, gen uint64, wait time.Duration, fn func()) {
	t := time.NewTimer(wait)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return
	case <-t.C:
	}

	d.mu.Lock()
	if d.gen != gen {
		// Lost the race with Stop or a newer Start.
		d.mu.Unlock()
		return
	}
	d.cancel()
	d.cancel = nil
	d.mu.Unlock()

	fn()
}
