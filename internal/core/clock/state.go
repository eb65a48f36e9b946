package clock

import "pompano/internal/core/model"

// State is a snapshot of the clock handed to observers.
type State struct {
	SessionType        model.SessionType
	TimeRemaining      int
	IsRunning          bool
	CompletedPomodoros int
	TotalTimeSpent     int

	// CompletedSessionType is empty until the first session finishes and
	// then holds the type of the most recently finished one.
	CompletedSessionType model.SessionType
}

// Completed returns the session type that finished last, if any.
func (state State) Completed() (model.SessionType, bool) {
	return state.CompletedSessionType, state.CompletedSessionType != ""
}

// TickFunc observes every state change.
type TickFunc func(State)

// CompleteFunc observes session completion. Call State to learn which
// session finished.
type CompleteFunc func()
