package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler manages a background task that runs at regular intervals
type Scheduler struct {
	interval time.Duration
	task     func()
	cancel   context.CancelFunc
	trigger  chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
}

// New creates a new Scheduler instance
func New(interval time.Duration, task func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		trigger:  make(chan struct{}, 1),
	}
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.task()
			case <-s.trigger:
				s.task()
				ticker.Reset(s.interval)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Trigger asks a running scheduler to run the task now instead of waiting
// for the next tick. Pending triggers coalesce; it is a no-op when stopped.
func (s *Scheduler) Trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.running = false

	select {
	case <-s.trigger:
	default:
	}
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
