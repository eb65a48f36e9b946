package clock

import (
	"time"

	"pompano/internal/core/model"
)

// Config contains runtime options for SessionClock.
type Config struct {
	TickInterval time.Duration
	Trigger      Trigger
}

// SessionClock is the work/break state machine.
//
// A SessionClock is not safe for concurrent use. Every method, and every
// firing of its Trigger, must run on the same goroutine.
type SessionClock struct {
	options   Config
	durations map[model.SessionType]int
	state     State
	cancel    func()
	onTick    []TickFunc
	onDone    []CompleteFunc
}

// New creates a paused clock on the work session.
func New(durations model.Durations, options Config) *SessionClock {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Trigger == nil {
		options.Trigger = TickerTrigger{}
	}

	clock := &SessionClock{
		options: options,
		durations: map[model.SessionType]int{
			model.SessionWork:  int(durations.Work / time.Second),
			model.SessionBreak: int(durations.Break / time.Second),
		},
	}
	clock.state = State{
		SessionType:   model.SessionWork,
		TimeRemaining: clock.durations[model.SessionWork],
	}
	return clock
}

// OnTick registers an observer for every state change.
func (clock *SessionClock) OnTick(callback TickFunc) {
	clock.onTick = append(clock.onTick, callback)
}

// OnComplete registers an observer for session completion.
func (clock *SessionClock) OnComplete(callback CompleteFunc) {
	clock.onDone = append(clock.onDone, callback)
}

// State returns a copy of the current state.
func (clock *SessionClock) State() State {
	return clock.state
}

// Start begins counting down the current session.
func (clock *SessionClock) Start() {
	if !clock.arm() {
		return
	}
	clock.notifyTick()
}

// Pause stops the countdown without touching the remaining time.
func (clock *SessionClock) Pause() {
	if !clock.disarm() {
		return
	}
	clock.notifyTick()
}

// Reset pauses and restores the full duration of the current session.
func (clock *SessionClock) Reset() {
	clock.Pause()
	clock.state.TimeRemaining = clock.durations[clock.state.SessionType]
	clock.notifyTick()
}

// SwitchSession pauses and selects the given session at its full duration.
func (clock *SessionClock) SwitchSession(sessionType model.SessionType) {
	if !sessionType.Valid() {
		return
	}
	clock.Pause()
	clock.state.SessionType = sessionType
	clock.state.TimeRemaining = clock.durations[sessionType]
	clock.notifyTick()
}

// SetCustomTime changes the configured duration of a session type.
// A running countdown keeps its remaining time; the new value applies on
// the next switch or reset into that session.
func (clock *SessionClock) SetCustomTime(sessionType model.SessionType, minutes int) {
	if !sessionType.Valid() {
		return
	}
	clock.durations[sessionType] = minutes * 60
	if clock.state.SessionType == sessionType && !clock.state.IsRunning {
		clock.state.TimeRemaining = clock.durations[sessionType]
		clock.notifyTick()
	}
}

// CustomTime returns the configured duration in whole minutes.
func (clock *SessionClock) CustomTime(sessionType model.SessionType) int {
	return clock.durations[sessionType] / 60
}

func (clock *SessionClock) arm() bool {
	if clock.state.IsRunning {
		return false
	}
	clock.state.IsRunning = true
	clock.cancel = clock.options.Trigger.Every(clock.options.TickInterval, clock.tick)
	return true
}

func (clock *SessionClock) disarm() bool {
	if !clock.state.IsRunning {
		return false
	}
	clock.state.IsRunning = false
	if clock.cancel != nil {
		clock.cancel()
		clock.cancel = nil
	}
	return true
}

func (clock *SessionClock) tick() {
	if !clock.state.IsRunning {
		return
	}

	clock.state.TimeRemaining--
	if clock.state.SessionType == model.SessionWork {
		clock.state.TotalTimeSpent++
	}

	if clock.state.TimeRemaining <= 0 {
		clock.completeSession()
		return
	}
	clock.notifyTick()
}

// completeSession pauses, switches to the other session, notifies and
// restarts. The trigger never fires from inside Every, so a zero duration
// completes once per tick rather than looping here.
func (clock *SessionClock) completeSession() {
	finished := clock.state.SessionType
	clock.state.CompletedSessionType = finished

	clock.Pause()

	next := model.SessionWork
	if finished == model.SessionWork {
		clock.state.CompletedPomodoros++
		next = model.SessionBreak
	}
	clock.SwitchSession(next)

	clock.notifyComplete()
	clock.Start()
}

func (clock *SessionClock) notifyTick() {
	for _, callback := range clock.onTick {
		callback(clock.state)
	}
}

func (clock *SessionClock) notifyComplete() {
	for _, callback := range clock.onDone {
		callback()
	}
}
