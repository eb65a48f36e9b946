package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pompano/internal/core/model"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{300, "05:00"},
		{1500, "25:00"},
		{3599, "59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(tt.seconds))
		})
	}
}

func TestFormatTotalTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"Nothing yet", 0, "0 mins"},
		{"Partial minute", 90, "1 mins"},
		{"Two minutes", 120, "2 mins"},
		{"Just under an hour", 3599, "59 mins"},
		{"Exactly one hour", 3600, "1hours 0 mins"},
		{"Hour and a half", 5400, "1hours 30 mins"},
		{"Several hours", 3*3600 + 5*60 + 59, "3hours 5 mins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTotalTime(tt.seconds))
		})
	}
}

func TestSessionLabel(t *testing.T) {
	assert.Equal(t, "Focus Time", SessionLabel(model.SessionWork))
	assert.Equal(t, "Break Time", SessionLabel(model.SessionBreak))
	assert.Empty(t, SessionLabel(model.SessionType("nap")))
}
