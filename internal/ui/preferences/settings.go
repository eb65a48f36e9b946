package preferences

import (
	"strconv"
	"strings"
	"time"

	"pompano/internal/core/model"
)

// Minute bounds accepted from the user for each session type.
const (
	MinWorkMinutes  = 1
	MaxWorkMinutes  = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int

	Sound         bool
	DesktopNotify bool
}

// DefaultSettings returns default settings for Pompano.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:   25,
		BreakMinutes:  5,
		Sound:         true,
		DesktopNotify: true,
	}
}

// Durations converts settings to the clock's session durations.
func (settings Settings) Durations() model.Durations {
	return model.Durations{
		Work:  time.Duration(settings.WorkMinutes) * time.Minute,
		Break: time.Duration(settings.BreakMinutes) * time.Minute,
	}
}

// Minutes returns the configured minutes for a session type.
func (settings Settings) Minutes(sessionType model.SessionType) int {
	if sessionType == model.SessionBreak {
		return settings.BreakMinutes
	}
	return settings.WorkMinutes
}

// InRange reports whether minutes is an acceptable duration for the type.
func InRange(sessionType model.SessionType, minutes int) bool {
	switch sessionType {
	case model.SessionWork:
		return minutes >= MinWorkMinutes && minutes <= MaxWorkMinutes
	case model.SessionBreak:
		return minutes >= MinBreakMinutes && minutes <= MaxBreakMinutes
	}
	return false
}

// DurationSetter is the part of the clock that accepts custom durations.
type DurationSetter interface {
	SetCustomTime(sessionType model.SessionType, minutes int)
	CustomTime(sessionType model.SessionType) int
}

// ApplyMinutes validates user text and forwards it to the clock.
// It returns the minutes now in effect and whether the input was accepted;
// rejected input leaves the clock untouched so the caller can restore the
// field from the returned value. Unchanged input is not forwarded, so a
// paused countdown keeps its remaining time.
func ApplyMinutes(setter DurationSetter, sessionType model.SessionType, text string) (int, bool) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || !InRange(sessionType, minutes) {
		return setter.CustomTime(sessionType), false
	}
	if minutes == setter.CustomTime(sessionType) {
		return minutes, true
	}
	setter.SetCustomTime(sessionType, minutes)
	return minutes, true
}
