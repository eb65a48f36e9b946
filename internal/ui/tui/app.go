package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pompano/internal/core/clock"
	"pompano/internal/core/model"
	"pompano/internal/ui/preferences"
)

type mode int

const (
	modeTimer mode = iota
	modeEditMinutes
)

// Alerter is told about every finished session.
type Alerter interface {
	SessionCompleted(finished model.SessionType)
}

// dispatchMsg carries a trigger firing onto the bubbletea loop.
type dispatchMsg struct {
	run func()
}

// Model is the terminal view over a SessionClock.
type Model struct {
	clock    *clock.SessionClock
	alerts   Alerter
	mode     mode
	editing  model.SessionType
	input    textinput.Model
	notice   string
	errText  string
	quitting bool
}

// NewModel wires a model to the clock's completion notifications.
func NewModel(sessionClock *clock.SessionClock, alerts Alerter) *Model {
	input := textinput.New()
	input.CharLimit = 3
	input.Width = 4

	m := &Model{
		clock:  sessionClock,
		alerts: alerts,
		input:  input,
	}
	sessionClock.OnComplete(m.handleComplete)
	return m
}

func (m *Model) handleComplete() {
	finished, ok := m.clock.State().Completed()
	if !ok {
		return
	}
	m.notice = clock.SessionLabel(finished) + " finished"
	if m.alerts != nil {
		m.alerts.SessionCompleted(finished)
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.run()
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEditMinutes {
			return m.updateEdit(msg)
		}
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m *Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errText = ""
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.clock.Pause()
		return m, tea.Quit
	case " ", "s":
		m.notice = ""
		if m.clock.State().IsRunning {
			m.clock.Pause()
		} else {
			m.clock.Start()
		}
	case "r":
		m.clock.Reset()
	case "w":
		m.clock.SwitchSession(model.SessionWork)
	case "b":
		m.clock.SwitchSession(model.SessionBreak)
	case "F":
		return m.beginEdit(model.SessionWork)
	case "B":
		return m.beginEdit(model.SessionBreak)
	}
	return m, nil
}

func (m *Model) beginEdit(sessionType model.SessionType) (tea.Model, tea.Cmd) {
	m.mode = modeEditMinutes
	m.editing = sessionType
	m.input.SetValue(fmt.Sprintf("%d", m.clock.CustomTime(sessionType)))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endEdit()
		return m, nil
	case "enter":
		if _, ok := preferences.ApplyMinutes(m.clock, m.editing, m.input.Value()); !ok {
			m.errText = rangeHint(m.editing)
		}
		m.endEdit()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) endEdit() {
	m.mode = modeTimer
	m.input.Blur()
	m.input.SetValue("")
}

func rangeHint(sessionType model.SessionType) string {
	if sessionType == model.SessionBreak {
		return fmt.Sprintf("break time must be %d-%d minutes", preferences.MinBreakMinutes, preferences.MaxBreakMinutes)
	}
	return fmt.Sprintf("focus time must be %d-%d minutes", preferences.MinWorkMinutes, preferences.MaxWorkMinutes)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	state := m.clock.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Pompano"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs(state.SessionType))
	b.WriteString("\n")
	b.WriteString(timeStyle.Render(clock.FormatTime(state.TimeRemaining)))
	b.WriteString("\n")

	label := focusLabelStyle
	if state.SessionType == model.SessionBreak {
		label = breakLabelStyle
	}
	status := "paused"
	if state.IsRunning {
		status = "running"
	}
	b.WriteString(label.Render(clock.SessionLabel(state.SessionType)))
	b.WriteString(dimStyle.Render("  " + status))
	b.WriteString("\n\n")

	b.WriteString(statsStyle.Render(fmt.Sprintf("Completed: %d   Total focus: %s",
		state.CompletedPomodoros, clock.FormatTotalTime(state.TotalTimeSpent))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Focus %d min · Break %d min",
		m.clock.CustomTime(model.SessionWork), m.clock.CustomTime(model.SessionBreak))))
	b.WriteString("\n\n")

	switch {
	case m.mode == modeEditMinutes:
		b.WriteString(inputStyle.Render(clock.SessionLabel(m.editing) + " minutes: " + m.input.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: apply  esc: cancel"))
		return b.String()
	case m.errText != "":
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space: start/pause  r: reset  w/b: focus/break  F/B: set minutes  q: quit"))
	return b.String()
}

func (m *Model) renderTabs(active model.SessionType) string {
	tabs := make([]string, 0, 2)
	for _, sessionType := range []model.SessionType{model.SessionWork, model.SessionBreak} {
		style := tabStyle
		if sessionType == active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(clock.SessionLabel(sessionType)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
