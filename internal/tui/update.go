package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/checkin"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/dashboard"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/gallery"
	"github.com/ecotrack/ecotrack-cli/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Sizing, resolved fetches, and mutation outcomes land no matter
	// which view or modal is open; dropping one would lose server state
	// that already arrived.
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		// room for tabs, notice line, and help
		contentHeight := msg.Height - 5

		h, v := docStyle.GetFrameSize()
		m.HabitList.SetSize(msg.Width-h, contentHeight-v)
		m.Gallery.SetSize(msg.Width-h, contentHeight-v)
		m.Suggestions.SetSize(msg.Width-h, contentHeight-v)
		m.Chat.SetSize(msg.Width-h, contentHeight-v)
		return m, nil

	// Sequence numbers keep a slow, superseded response from clobbering
	// newer state.
	case handlers.UserDataMsg:
		if msg.Err != nil {
			// prior state stays on screen; the fetch just failed
			handlers.Fail(&m.Model, "Failed to load your data", msg.Err)
			return m, nil
		}
		if m.Store.ApplyUser(msg.State, msg.Seq) {
			handlers.SyncFromStore(&m.Model)
		}
		return m, nil

	case handlers.AchievementsMsg:
		if msg.Err != nil {
			// achievements are non-critical: keep whatever is shown
			return m, nil
		}
		if m.Store.ApplyAchievements(msg.List, msg.Seq) {
			handlers.SyncFromStore(&m.Model)
		}
		return m, nil

	case handlers.SuggestionsMsg:
		if msg.Err != nil {
			// fall back to the built-in cards
			m.Suggestions.SetSuggestions(nil)
			return m, nil
		}
		if m.Store.ApplySuggestions(msg.List, msg.Seq) {
			m.Suggestions.SetSuggestions(m.Store.Suggestions())
		}
		return m, nil

	case handlers.CheckinResultMsg:
		return m, handlers.HandleCheckinResult(&m.Model, msg)

	case handlers.HabitSavedMsg:
		return m, handlers.HandleHabitSaved(&m.Model, msg)

	case handlers.HabitMutationMsg:
		return m, handlers.HandleHabitMutation(&m.Model, msg)

	case handlers.HabitStartedMsg:
		return m, handlers.HandleHabitStarted(&m.Model, msg)
	}

	// Form sub-states capture the remaining input until closed.
	if m.State == constants.StateAddHabit || m.State == constants.StateEditHabit {
		return m, handlers.HandleHabitFormState(&m.Model, msg)
	}
	if m.State == constants.StateConfirmDelete {
		return m, handlers.HandleConfirmDelete(&m.Model, msg)
	}

	switch msg.(type) {
	case checkin.SubmitMsg:
		return m, handlers.HandleCheckinSubmit(&m.Model)

	case dashboard.RefreshMsg:
		return m, tea.Batch(
			handlers.RefreshUserCmd(m.Store),
			handlers.RefreshAchievementsCmd(m.Store),
		)

	case gallery.RefreshMsg:
		return m, handlers.RefreshAchievementsCmd(m.Store)
	}

	if handled, cmd := handlers.HandleHabitMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleSuggestionMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleChatMessages(&m.Model, msg); handled {
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// the chat input needs every printable key while typing
		if !(m.State == constants.StateChat && m.Chat.Open()) {
			if handled, cmd := handlers.HandleGlobalKeys(&m.Model, keyMsg); handled {
				return m, cmd
			}
		} else if keyMsg.String() == "ctrl+c" {
			m.Quitting = true
			m.Poller.Stop()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case constants.StateHabits:
		m.HabitList, cmd = m.HabitList.Update(msg)
	case constants.StateCheckin:
		m.Checkin, cmd = m.Checkin.Update(msg)
	case constants.StateAchievements:
		m.Gallery, cmd = m.Gallery.Update(msg)
	case constants.StateSuggestions:
		m.Suggestions, cmd = m.Suggestions.Update(msg)
	case constants.StateChat:
		m.Chat, cmd = m.Chat.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
