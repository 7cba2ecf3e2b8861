package apikeys

import (
	"sync"
	"time"

	"github.com/status-im/mapzen-core/resources"
	"github.com/status-im/mapzen-core/scheduler"
)

// DefaultRefreshInterval is used when NewRefresher is given a zero interval
const DefaultRefreshInterval = 5 * time.Minute

// Refresher periodically re-reads the key resource and pushes changes
// through the Manager. A key set at runtime is only replaced once the
// resource itself changes; a resource that disappears leaves the key as is.
type Refresher struct {
	manager   *Manager
	ctx       resources.AppContext
	scheduler *scheduler.Scheduler

	mu      sync.Mutex
	last    string
	hasLast bool
}

// NewRefresher creates a refresher for m reading from ctx. The current
// resource value is taken as the baseline.
func NewRefresher(m *Manager, ctx resources.AppContext, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	r := &Refresher{
		manager: m,
		ctx:     ctx,
	}
	r.last, r.hasLast = m.resolve(ctx, TriggerRefresh)
	r.scheduler = scheduler.New(interval, func() { r.Refresh() })

	return r
}

// Start begins periodic refreshes
func (r *Refresher) Start() {
	r.scheduler.Start()
	r.manager.logger.Debug("Started API key refresher")
}

// Stop halts periodic refreshes and waits for an in-flight one to finish
func (r *Refresher) Stop() {
	r.scheduler.Stop()
	r.manager.logger.Debug("Stopped API key refresher")
}

// Trigger schedules an immediate refresh on the refresher goroutine
func (r *Refresher) Trigger() {
	r.scheduler.Trigger()
}

// Refresh re-reads the resource now and reports whether the key changed
func (r *Refresher) Refresh() bool {
	key, ok := r.manager.resolve(r.ctx, TriggerRefresh)
	if !ok {
		return false
	}

	r.mu.Lock()
	if r.hasLast && key == r.last {
		r.mu.Unlock()
		return false
	}
	r.last, r.hasLast = key, true
	r.mu.Unlock()

	// Check and set are separate steps: a SetAPIKey landing in between is
	// overwritten here, the same last-write-wins as two concurrent setters.
	if current, set := r.manager.LookupAPIKey(); set && current == key {
		return false
	}

	r.manager.setAPIKey(key, SourceRefresh)
	return true
}
