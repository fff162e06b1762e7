package handlers

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/suggestions"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

// HabitStartedMsg carries the outcome of saving a suggestion as a habit.
type HabitStartedMsg struct {
	Title string
	Err   error
}

// StartHabitCmd saves a suggestion's title as a new habit off the event
// loop.
func StartHabitCmd(s *store.Store, title string) tea.Cmd {
	return func() tea.Msg {
		return HabitStartedMsg{Title: title, Err: s.Client().SaveHabit(context.Background(), title)}
	}
}

// HandleSuggestionMessages reacts to "start this habit": save the
// suggestion's title as a habit, refresh, and jump to the habits tab.
func HandleSuggestionMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	start, ok := msg.(suggestions.StartHabitMsg)
	if !ok {
		return false, nil
	}
	return true, StartHabitCmd(m.Store, start.Title)
}

// HandleHabitStarted finalizes a started suggestion: success lands the
// user on the habits tab with fresh state.
func HandleHabitStarted(m *state.Model, msg HabitStartedMsg) tea.Cmd {
	if msg.Err != nil {
		Fail(m, "Failed to start habit", msg.Err)
		return nil
	}

	m.Notice = ""
	m.Notifier.Notify("New habit started: " + msg.Title)
	m.PreviousState = m.State
	m.State = constants.StateHabits
	return RefreshUserCmd(m.Store)
}
