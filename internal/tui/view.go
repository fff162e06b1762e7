package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var content string
	switch m.State {
	case constants.StateDashboard:
		content = docStyle.Render(m.Dashboard.View())
	case constants.StateHabits:
		content = docStyle.Render(m.HabitList.View())
	case constants.StateCheckin:
		content = docStyle.Render(m.Checkin.View())
	case constants.StateAchievements:
		content = docStyle.Render(m.Gallery.View())
	case constants.StateSuggestions:
		content = docStyle.Render(m.Suggestions.View())
	case constants.StateChat:
		content = docStyle.Render(m.Chat.View())
	case constants.StateAddHabit, constants.StateEditHabit:
		content = docStyle.Render(m.Form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var notice string
	if m.Notice != "" {
		notice = noticeStyle.Render("⚠ " + m.Notice)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		notice,
		content,
		m.Help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Habits", "Check-in", "Achievements", "Suggestions", "Chat"}
	for i, title := range tabTitles {
		if m.State == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	if m.Notifier.Enabled() {
		tabs = append(tabs, inactiveTabStyle.Render("🔔"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.Width, m.Height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit? This cannot be undone."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
