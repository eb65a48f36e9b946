package dashboard

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

func TestRender(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	dash := New(app, Callbacks{})
	dash.Render(clock.State{
		SessionType:        model.SessionBreak,
		TimeRemaining:      65,
		IsRunning:          true,
		CompletedPomodoros: 3,
		TotalTimeSpent:     5400,
	})

	assert.Equal(t, "01:05", dash.timeLabel.Text)
	assert.Equal(t, "Break Time", dash.sessionLabel.Text)
	assert.Equal(t, "Pause", dash.toggle.Text)
	assert.Equal(t, "3", dash.completed.Text)
	assert.Equal(t, "1hours 30 mins", dash.totalTime.Text)
	assert.Equal(t, widget.HighImportance, dash.breakTab.Importance)
	assert.Equal(t, widget.LowImportance, dash.focusTab.Importance)
	assert.Equal(t, "01:05 - Pompano", dash.window.Title())
}

func TestButtonsInvokeCallbacks(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var switched []model.SessionType
	toggles, resets := 0, 0
	dash := New(app, Callbacks{
		OnToggle: func() { toggles++ },
		OnReset:  func() { resets++ },
		OnSwitch: func(sessionType model.SessionType) { switched = append(switched, sessionType) },
	})

	test.Tap(dash.toggle)
	test.Tap(dash.breakTab)
	test.Tap(dash.focusTab)

	assert.Equal(t, 1, toggles)
	assert.Zero(t, resets)
	assert.Equal(t, []model.SessionType{model.SessionBreak, model.SessionWork}, switched)
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "25:00 - Pompano", WindowTitle(clock.State{TimeRemaining: 1500}))
}
