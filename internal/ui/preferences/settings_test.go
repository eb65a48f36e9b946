package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

type nopTrigger struct{}

func (nopTrigger) Every(time.Duration, func()) func() { return func() {} }

func TestInRange(t *testing.T) {
	tests := []struct {
		name        string
		sessionType model.SessionType
		minutes     int
		expected    bool
	}{
		{"Work lower bound", model.SessionWork, 1, true},
		{"Work upper bound", model.SessionWork, 60, true},
		{"Work zero", model.SessionWork, 0, false},
		{"Work too long", model.SessionWork, 61, false},
		{"Break upper bound", model.SessionBreak, 30, true},
		{"Break too long", model.SessionBreak, 31, false},
		{"Break negative", model.SessionBreak, -5, false},
		{"Unknown session", model.SessionType("nap"), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InRange(tt.sessionType, tt.minutes))
		})
	}
}

func TestApplyMinutes(t *testing.T) {
	sessionClock := clock.New(model.DefaultDurations(), clock.Config{Trigger: nopTrigger{}})

	minutes, ok := ApplyMinutes(sessionClock, model.SessionWork, " 30 ")
	assert.True(t, ok)
	assert.Equal(t, 30, minutes)
	assert.Equal(t, 1800, sessionClock.State().TimeRemaining)

	minutes, ok = ApplyMinutes(sessionClock, model.SessionWork, "90")
	assert.False(t, ok)
	assert.Equal(t, 30, minutes)

	minutes, ok = ApplyMinutes(sessionClock, model.SessionBreak, "abc")
	assert.False(t, ok)
	assert.Equal(t, 5, minutes)

	minutes, ok = ApplyMinutes(sessionClock, model.SessionBreak, "30")
	assert.True(t, ok)
	assert.Equal(t, 30, minutes)
	assert.Equal(t, 30, sessionClock.CustomTime(model.SessionBreak))
}

func TestApplyMinutesUnchangedKeepsRemaining(t *testing.T) {
	sessionClock := clock.New(model.DefaultDurations(), clock.Config{Trigger: nopTrigger{}})
	calls := 0
	sessionClock.OnTick(func(clock.State) { calls++ })

	minutes, ok := ApplyMinutes(sessionClock, model.SessionWork, "25")

	assert.True(t, ok)
	assert.Equal(t, 25, minutes)
	assert.Zero(t, calls)
}

func TestSettingsDurations(t *testing.T) {
	settings := DefaultSettings()
	settings.WorkMinutes = 50

	durations := settings.Durations()
	assert.Equal(t, 50*time.Minute, durations.Work)
	assert.Equal(t, 5*time.Minute, durations.Break)
	assert.Equal(t, 50, settings.Minutes(model.SessionWork))
	assert.Equal(t, 5, settings.Minutes(model.SessionBreak))
}
