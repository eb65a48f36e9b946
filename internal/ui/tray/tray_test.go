package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		state    clock.State
		expected string
	}{
		{
			name:     "Running focus",
			state:    clock.State{SessionType: model.SessionWork, TimeRemaining: 1499, IsRunning: true},
			expected: "Status: Focus Time 24:59",
		},
		{
			name:     "Paused break",
			state:    clock.State{SessionType: model.SessionBreak, TimeRemaining: 300},
			expected: "Status: Break Time 05:00 (paused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusLabel(tt.state))
		})
	}
}

func TestSetStateWithoutTray(t *testing.T) {
	var switched []model.SessionType
	manager := New(nil, Callbacks{
		OnSwitch: func(sessionType model.SessionType) { switched = append(switched, sessionType) },
	})

	manager.SetState(clock.State{SessionType: model.SessionBreak, TimeRemaining: 120, IsRunning: true})

	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.True(t, manager.breakItem.Checked)
	assert.False(t, manager.focusItem.Checked)

	manager.focusItem.Action()
	assert.Equal(t, []model.SessionType{model.SessionWork}, switched)
}
