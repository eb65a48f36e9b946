package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pompano/internal/core/model"
)

func offer(queue chan func(), run func()) {
	select {
	case queue <- run:
	default:
	}
}

func TestTickerTriggerFires(t *testing.T) {
	var fired atomic.Int32
	cancel := TickerTrigger{}.Every(5*time.Millisecond, func() { fired.Add(1) })
	defer cancel()

	require.Eventually(t, func() bool { return fired.Load() >= 3 }, time.Second, time.Millisecond)
}

func TestTickerTriggerDispatchesAndDropsAfterCancel(t *testing.T) {
	queue := make(chan func(), 16)
	trigger := TickerTrigger{Dispatch: func(run func()) { offer(queue, run) }}

	fired := 0
	cancel := trigger.Every(2*time.Millisecond, func() { fired++ })

	var queued func()
	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		t.Fatal("trigger never dispatched")
	}
	queued()
	assert.Equal(t, 1, fired)

	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		t.Fatal("trigger never dispatched a second firing")
	}
	cancel()
	cancel()
	queued()

	assert.Equal(t, 1, fired)
}

func TestClockWithTickerTrigger(t *testing.T) {
	queue := make(chan func(), 16)
	clock := New(model.Durations{Work: time.Minute, Break: time.Minute}, Config{
		TickInterval: time.Millisecond,
		Trigger:      TickerTrigger{Dispatch: func(run func()) { offer(queue, run) }},
	})
	clock.Start()

	for clock.State().TimeRemaining > 57 {
		select {
		case run := <-queue:
			run()
		case <-time.After(time.Second):
			t.Fatal("clock stopped ticking")
		}
	}
	clock.Pause()

	assert.Equal(t, 57, clock.State().TimeRemaining)
	assert.False(t, clock.State().IsRunning)
}
