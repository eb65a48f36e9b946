package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
)

// Run owns the clock for the lifetime of the terminal program. Ticks are
// delivered through the bubbletea loop so the clock only runs on it.
func Run(durations model.Durations, alerts Alerter) error {
	var program *tea.Program
	sessionClock := clock.New(durations, clock.Config{
		Trigger: clock.TickerTrigger{Dispatch: func(run func()) {
			program.Send(dispatchMsg{run: run})
		}},
	})

	program = tea.NewProgram(NewModel(sessionClock, alerts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
