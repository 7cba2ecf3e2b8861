package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsPeriodically(t *testing.T) {
	var counter int32

	s := New(50*time.Millisecond, func() {
		atomic.AddInt32(&counter, 1)
	})

	s.Start()
	assert.True(t, s.IsRunning())

	time.Sleep(180 * time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.GreaterOrEqual(t, atomic.LoadInt32(&counter), int32(2))

	// No further runs after Stop
	stopped := atomic.LoadInt32(&counter)
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, stopped, atomic.LoadInt32(&counter))
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	s := New(100*time.Millisecond, func() {})
	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestScheduler_DoubleStart(t *testing.T) {
	var counter int32
	s := New(100*time.Millisecond, func() {
		atomic.AddInt32(&counter, 1)
	})

	s.Start()
	s.Start()

	time.Sleep(150 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, atomic.LoadInt32(&counter), int32(1))
}

func TestScheduler_Trigger(t *testing.T) {
	ran := make(chan struct{}, 4)
	s := New(time.Hour, func() {
		ran <- struct{}{}
	})

	s.Start()
	defer s.Stop()

	s.Trigger()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("triggered task did not run")
	}
}

func TestScheduler_TriggerWhenStopped(t *testing.T) {
	var counter int32
	s := New(time.Hour, func() {
		atomic.AddInt32(&counter, 1)
	})

	s.Trigger() // should not block or run

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(0), atomic.LoadInt32(&counter))
}
