package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Trigger calls fn once per interval until the returned cancel is called.
// Implementations must not call fn from inside Every.
type Trigger interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// TickerTrigger drives a Trigger from a time.Ticker.
//
// Each firing is passed to Dispatch, which should run it on the goroutine
// that owns the clock. A nil Dispatch runs fn on the ticker goroutine.
type TickerTrigger struct {
	Dispatch func(func())
}

// Every starts a ticker goroutine.
func (trigger TickerTrigger) Every(interval time.Duration, fn func()) func() {
	dispatch := trigger.Dispatch
	if dispatch == nil {
		dispatch = func(run func()) { run() }
	}

	ticker := time.NewTicker(interval)
	stopCh := make(chan struct{})
	var cancelled atomic.Bool

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				dispatch(func() {
					// drop firings queued before cancel
					if cancelled.Load() {
						return
					}
					fn()
				})
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancelled.Store(true)
			close(stopCh)
		})
	}
}
