package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

const menuTitle = "Pompano"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSwitch      func(model.SessionType)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	focusItem  *fyne.MenuItem
	breakItem  *fyne.MenuItem
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})
	manager.focusItem = fyne.NewMenuItem(clock.SessionLabel(model.SessionWork), func() {
		manager.switchTo(model.SessionWork)
	})
	manager.breakItem = fyne.NewMenuItem(clock.SessionLabel(model.SessionBreak), func() {
		manager.switchTo(model.SessionBreak)
	})

	manager.refreshMenu()
	return manager
}

// SetState reflects a clock snapshot in the menu.
func (manager *Manager) SetState(state clock.State) {
	manager.statusItem.Label = StatusLabel(state)
	if state.IsRunning {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.focusItem.Checked = state.SessionType == model.SessionWork
	manager.breakItem.Checked = state.SessionType == model.SessionBreak
	manager.refreshMenu()
}

// StatusLabel summarises a snapshot for the disabled status entry.
func StatusLabel(state clock.State) string {
	status := fmt.Sprintf("%s %s", clock.SessionLabel(state.SessionType), clock.FormatTime(state.TimeRemaining))
	if !state.IsRunning {
		status += " (paused)"
	}
	return fmt.Sprintf("Status: %s", status)
}

func (manager *Manager) switchTo(sessionType model.SessionType) {
	if manager.callbacks.OnSwitch != nil {
		manager.callbacks.OnSwitch(sessionType)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItemSeparator(),
		manager.focusItem,
		manager.breakItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
