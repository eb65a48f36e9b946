package dashboard

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

const appTitle = "Pompano"

var (
	focusColor = color.NRGBA{R: 232, G: 92, B: 74, A: 255}
	breakColor = color.NRGBA{R: 76, G: 175, B: 120, A: 255}
)

// Callbacks defines dashboard action handlers.
type Callbacks struct {
	OnToggle      func()
	OnReset       func()
	OnSwitch      func(model.SessionType)
	OnPreferences func()
	OnClose       func()
}

// Window shows the countdown and the session statistics.
type Window struct {
	window       fyne.Window
	callbacks    Callbacks
	timeLabel    *canvas.Text
	sessionLabel *canvas.Text
	toggle       *widget.Button
	focusTab     *widget.Button
	breakTab     *widget.Button
	completed    *widget.Label
	totalTime    *widget.Label
}

// New builds the dashboard window.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow(appTitle)

	timeLabel := canvas.NewText("--:--", focusColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timeLabel.TextSize = 64

	sessionLabel := canvas.NewText("", focusColor)
	sessionLabel.Alignment = fyne.TextAlignCenter
	sessionLabel.TextSize = 20

	dash := &Window{
		window:       window,
		callbacks:    callbacks,
		timeLabel:    timeLabel,
		sessionLabel: sessionLabel,
		completed:    widget.NewLabel("0"),
		totalTime:    widget.NewLabel("0 mins"),
	}

	dash.focusTab = widget.NewButton(clock.SessionLabel(model.SessionWork), func() {
		dash.switchTo(model.SessionWork)
	})
	dash.breakTab = widget.NewButton(clock.SessionLabel(model.SessionBreak), func() {
		dash.switchTo(model.SessionBreak)
	})
	dash.toggle = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), func() {
		if dash.callbacks.OnToggle != nil {
			dash.callbacks.OnToggle()
		}
	})
	reset := widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), func() {
		if dash.callbacks.OnReset != nil {
			dash.callbacks.OnReset()
		}
	})
	settings := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		if dash.callbacks.OnPreferences != nil {
			dash.callbacks.OnPreferences()
		}
	})

	stats := container.NewGridWithColumns(2,
		widget.NewLabelWithStyle("Completed pomodoros", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		dash.completed,
		widget.NewLabelWithStyle("Total focus time", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		dash.totalTime,
	)

	content := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), dash.focusTab, dash.breakTab, layout.NewSpacer(), settings),
		timeLabel,
		sessionLabel,
		container.NewHBox(layout.NewSpacer(), dash.toggle, reset, layout.NewSpacer()),
		widget.NewSeparator(),
		stats,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		if dash.callbacks.OnClose != nil {
			dash.callbacks.OnClose()
			return
		}
		window.Close()
	})

	return dash
}

// Show displays the dashboard window.
func (dash *Window) Show() {
	dash.window.Show()
	dash.window.RequestFocus()
}

// Hide hides the dashboard window.
func (dash *Window) Hide() {
	dash.window.Hide()
}

// Render paints a clock snapshot.
func (dash *Window) Render(state clock.State) {
	remaining := clock.FormatTime(state.TimeRemaining)
	tint := focusColor
	if state.SessionType == model.SessionBreak {
		tint = breakColor
	}

	dash.timeLabel.Text = remaining
	dash.timeLabel.Color = tint
	dash.timeLabel.Refresh()
	dash.sessionLabel.Text = clock.SessionLabel(state.SessionType)
	dash.sessionLabel.Color = tint
	dash.sessionLabel.Refresh()

	if state.IsRunning {
		dash.toggle.SetText("Pause")
		dash.toggle.SetIcon(theme.MediaPauseIcon())
	} else {
		dash.toggle.SetText("Start")
		dash.toggle.SetIcon(theme.MediaPlayIcon())
	}

	dash.focusTab.Importance = tabImportance(state.SessionType == model.SessionWork)
	dash.focusTab.Refresh()
	dash.breakTab.Importance = tabImportance(state.SessionType == model.SessionBreak)
	dash.breakTab.Refresh()

	dash.completed.SetText(strconv.Itoa(state.CompletedPomodoros))
	dash.totalTime.SetText(clock.FormatTotalTime(state.TotalTimeSpent))
	dash.window.SetTitle(WindowTitle(state))
}

// WindowTitle mirrors the countdown in the title bar.
func WindowTitle(state clock.State) string {
	return clock.FormatTime(state.TimeRemaining) + " - " + appTitle
}

func (dash *Window) switchTo(sessionType model.SessionType) {
	if dash.callbacks.OnSwitch != nil {
		dash.callbacks.OnSwitch(sessionType)
	}
}

func tabImportance(active bool) widget.Importance {
	if active {
		return widget.HighImportance
	}
	return widget.LowImportance
}
