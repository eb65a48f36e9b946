package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/cobra"

	"pompano/internal/core/clock"
	"pompano/internal/platform"
	"pompano/internal/ui/dashboard"
	"pompano/internal/ui/preferences"
	"pompano/internal/ui/tray"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Run the desktop timer with a system tray icon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		guard, err := platform.AcquireSingleInstance(appName)
		if err != nil {
			return err
		}
		defer func() {
			_ = guard.Release()
		}()

		alerts, closeAlerts := newAlerts(settings)
		defer closeAlerts()

		runGUI(settings, alerts)
		return nil
	},
}

func runGUI(settings preferences.Settings, alerts *platform.Alerts) {
	fyneApp := app.NewWithID("com.pompano.app")

	sessionClock := clock.New(settings.Durations(), clock.Config{
		Trigger: clock.TickerTrigger{Dispatch: fyne.Do},
	})

	toggle := func() {
		if sessionClock.State().IsRunning {
			sessionClock.Pause()
		} else {
			sessionClock.Start()
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, sessionClock, func(updated preferences.Settings) {
		settings = updated
		alerts.SetConfig(alertConfig(settings))
	})

	desktopApp, hasTray := fyneApp.(desktop.App)
	if !hasTray {
		log.Printf("system tray unsupported on this platform")
	}

	var dash *dashboard.Window
	dash = dashboard.New(fyneApp, dashboard.Callbacks{
		OnToggle:      toggle,
		OnReset:       sessionClock.Reset,
		OnSwitch:      sessionClock.SwitchSession,
		OnPreferences: prefsWindow.Show,
		OnClose: func() {
			if hasTray {
				dash.Hide()
				return
			}
			fyneApp.Quit()
		},
	})

	var trayManager *tray.Manager
	if hasTray {
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        dash.Show,
			OnToggle:      toggle,
			OnReset:       sessionClock.Reset,
			OnSwitch:      sessionClock.SwitchSession,
			OnPreferences: prefsWindow.Show,
			OnQuit: func() {
				sessionClock.Pause()
				fyneApp.Quit()
			},
		})
	}

	render := func(state clock.State) {
		dash.Render(state)
		if trayManager != nil {
			trayManager.SetState(state)
		}
	}
	sessionClock.OnTick(render)
	sessionClock.OnComplete(func() {
		if finished, ok := sessionClock.State().Completed(); ok {
			alerts.SessionCompleted(finished)
		}
	})

	render(sessionClock.State())
	dash.Show()
	fyneApp.Run()
}
