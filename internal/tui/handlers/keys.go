package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/questionnaire"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

// HandleGlobalKeys handles key presses that apply on every main tab.
// Returns true when the key was consumed.
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		m.Poller.Stop()
		return true, tea.Quit
	case "tab":
		return true, switchTab(m, (m.State+1)%constants.NumMainTabs)
	case "shift+tab":
		return true, switchTab(m, (m.State-1+constants.NumMainTabs)%constants.NumMainTabs)
	case "?":
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	}
	return false, nil
}

// switchTab moves between main views and runs each tab's entry work:
// leaving chat stops the poller, entering a data tab refreshes it.
func switchTab(m *state.Model, next constants.SessionState) tea.Cmd {
	if m.State == constants.StateChat && next != constants.StateChat {
		m.Poller.Stop()
	}

	m.PreviousState = m.State
	m.State = next
	m.Notice = ""

	switch next {
	case constants.StateDashboard:
		return tea.Batch(RefreshUserCmd(m.Store), RefreshAchievementsCmd(m.Store))
	case constants.StateCheckin:
		// the calendar day may have rolled over since the last submit,
		// which re-enables the form
		if m.Checkin.Form().State() == questionnaire.SubmittedToday && !m.Store.CheckedInToday() {
			m.Checkin.Reset(questionnaire.NewForm(false))
		}
	case constants.StateHabits:
		return RefreshUserCmd(m.Store)
	case constants.StateAchievements:
		return RefreshAchievementsCmd(m.Store)
	case constants.StateSuggestions:
		return RefreshSuggestionsCmd(m.Store)
	case constants.StateChat:
		return FetchCommunitiesCmd(m.Store)
	}
	return nil
}
