package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pompano/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	setter     DurationSetter
	onSave     func(Settings)
	workEntry  *widget.Entry
	breakEntry *widget.Entry
	sound      *widget.Check
	notify     *widget.Check
}

// New creates a preferences window that writes durations through setter.
func New(app fyne.App, settings Settings, setter DurationSetter, onSave func(Settings)) *Window {
	window := app.NewWindow("Pompano Settings")

	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))

	sound := widget.NewCheck("Play alarm sound", nil)
	sound.SetChecked(settings.Sound)

	notify := widget.NewCheck("Desktop notifications", nil)
	notify.SetChecked(settings.DesktopNotify)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus time"), workEntry,
			widget.NewLabel(fmt.Sprintf("min (%d-%d)", MinWorkMinutes, MaxWorkMinutes))),
		container.NewHBox(widget.NewLabel("Break time"), breakEntry,
			widget.NewLabel(fmt.Sprintf("min (%d-%d)", MinBreakMinutes, MaxBreakMinutes))),
		widget.NewLabelWithStyle("Alerts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sound,
		notify,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 260))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:     window,
		settings:   settings,
		setter:     setter,
		onSave:     onSave,
		workEntry:  workEntry,
		breakEntry: breakEntry,
		sound:      sound,
		notify:     notify,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))
	prefs.sound.SetChecked(settings.Sound)
	prefs.notify.SetChecked(settings.DesktopNotify)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	workMinutes, workOK := ApplyMinutes(prefs.setter, model.SessionWork, prefs.workEntry.Text)
	breakMinutes, breakOK := ApplyMinutes(prefs.setter, model.SessionBreak, prefs.breakEntry.Text)
	settings.WorkMinutes = workMinutes
	settings.BreakMinutes = breakMinutes
	settings.Sound = prefs.sound.Checked
	settings.DesktopNotify = prefs.notify.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	if workOK && breakOK {
		prefs.window.Hide()
	}
}
