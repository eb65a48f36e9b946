package model

import "time"

// SessionType identifies one half of the work/break cycle.
type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// Valid reports whether the type is one of the known sessions.
func (sessionType SessionType) Valid() bool {
	return sessionType == SessionWork || sessionType == SessionBreak
}

// Durations holds the configured length of each session type.
type Durations struct {
	Work  time.Duration
	Break time.Duration
}

// DefaultDurations returns the classic 25/5 cycle.
func DefaultDurations() Durations {
	return Durations{
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	}
}
