package handlers

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

// CheckinResultMsg carries the outcome of a questionnaire submission.
type CheckinResultMsg struct {
	Err error
}

// HandleCheckinSubmit validates and submits the daily check-in. Validation
// failures never fire a network call; the form simply is not submittable.
func HandleCheckinSubmit(m *state.Model) tea.Cmd {
	form := m.Checkin.Form()

	impact, err := form.BeginSubmit()
	if err != nil {
		Fail(m, "Check-in not submitted", err)
		return nil
	}

	s := m.Store
	return func() tea.Msg {
		return CheckinResultMsg{Err: s.Client().SubmitQuestionnaire(context.Background(), impact)}
	}
}

// HandleCheckinResult finalizes the submission: success disables the form
// for the rest of the day and refreshes server state (streak and score move
// on a check-in); failure reverts the form so the user can retry.
func HandleCheckinResult(m *state.Model, msg CheckinResultMsg) tea.Cmd {
	form := m.Checkin.Form()

	if msg.Err != nil {
		form.SubmitFailed()
		Fail(m, "Failed to submit check-in", msg.Err)
		return nil
	}

	form.SubmitSucceeded()
	m.Store.MarkCheckedInToday()
	m.Notice = ""
	m.Notifier.Notify("Daily check-in submitted successfully!")
	return tea.Batch(RefreshUserCmd(m.Store), RefreshAchievementsCmd(m.Store))
}
