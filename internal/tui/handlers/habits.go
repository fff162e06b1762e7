package handlers

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/habitlist"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

// HabitMutationMsg carries the outcome of a toggle or delete. Action is
// the notice shown on failure.
type HabitMutationMsg struct {
	Action string
	Err    error
}

// HabitSavedMsg carries the outcome of an add or edit submission.
type HabitSavedMsg struct {
	Err error
}

// ToggleHabitCmd flips a habit's completed state on the server off the
// event loop; the UI stays responsive while the request is in flight.
func ToggleHabitCmd(s *store.Store, id int) tea.Cmd {
	return func() tea.Msg {
		return HabitMutationMsg{
			Action: "Failed to toggle habit",
			Err:    s.Client().ToggleHabit(context.Background(), id),
		}
	}
}

// DeleteHabitCmd removes a habit on the server off the event loop.
func DeleteHabitCmd(s *store.Store, id int) tea.Cmd {
	return func() tea.Msg {
		return HabitMutationMsg{
			Action: "Failed to delete habit",
			Err:    s.Client().DeleteHabit(context.Background(), id),
		}
	}
}

// SaveHabitCmd creates a habit on the server off the event loop.
func SaveHabitCmd(s *store.Store, text string) tea.Cmd {
	return func() tea.Msg {
		return HabitSavedMsg{Err: s.Client().SaveHabit(context.Background(), text)}
	}
}

// UpdateHabitCmd rewrites a habit's text on the server off the event loop.
func UpdateHabitCmd(s *store.Store, id int, text string) tea.Cmd {
	return func() tea.Msg {
		return HabitSavedMsg{Err: s.Client().UpdateHabit(context.Background(), id, text)}
	}
}

// HandleHabitMessages reacts to the habit list's action messages. Every
// write goes to the server first and then re-fetches; the store never
// holds a guessed local mutation.
func HandleHabitMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.HabitForm = &state.HabitFormModel{}
		m.EditingHabitID = 0
		m.Form = NewHabitForm(m.HabitForm)
		m.State = constants.StateAddHabit
		return true, m.Form.Init()

	case habitlist.EditHabitMsg:
		m.HabitForm = &state.HabitFormModel{Text: msg.Habit.Text}
		m.EditingHabitID = msg.Habit.ID
		m.Store.SetEditing(msg.Habit.ID, true)
		m.Form = NewHabitForm(m.HabitForm)
		m.State = constants.StateEditHabit
		return true, m.Form.Init()

	case habitlist.ToggleHabitMsg:
		return true, ToggleHabitCmd(m.Store, msg.ID)

	case habitlist.DeleteHabitMsg:
		m.HabitToDelete = msg.ID
		m.PreviousState = m.State
		m.State = constants.StateConfirmDelete
		return true, nil
	}
	return false, nil
}

// HandleHabitMutation finalizes a toggle or delete: success refreshes the
// authoritative state, failure surfaces one notice.
func HandleHabitMutation(m *state.Model, msg HabitMutationMsg) tea.Cmd {
	if msg.Err != nil {
		Fail(m, msg.Action, msg.Err)
		return nil
	}
	m.Notice = ""
	return RefreshUserCmd(m.Store)
}

// HandleHabitFormState drives the add/edit habit form while it is open.
// Completion dispatches the save and returns the form to its normal state
// so a failure can be retried in place.
func HandleHabitFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		closeHabitForm(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		text := strings.TrimSpace(m.HabitForm.Text)
		m.Form.State = huh.StateNormal

		if m.EditingHabitID == 0 {
			cmds = append(cmds, SaveHabitCmd(m.Store, text))
		} else {
			cmds = append(cmds, UpdateHabitCmd(m.Store, m.EditingHabitID, text))
		}
	case huh.StateAborted:
		closeHabitForm(m)
	}
	return tea.Batch(cmds...)
}

// HandleHabitSaved finalizes an add/edit submission: success closes the
// form and refreshes, failure keeps it open so the user can retry or
// cancel.
func HandleHabitSaved(m *state.Model, msg HabitSavedMsg) tea.Cmd {
	if msg.Err != nil {
		Fail(m, "Failed to save habit", msg.Err)
		return nil
	}
	m.Notice = ""
	closeHabitForm(m)
	return RefreshUserCmd(m.Store)
}

func closeHabitForm(m *state.Model) {
	if m.EditingHabitID != 0 {
		m.Store.SetEditing(m.EditingHabitID, false)
		m.EditingHabitID = 0
	}
	m.State = constants.StateHabits
}

// HandleConfirmDelete drives the delete confirmation prompt.
func HandleConfirmDelete(m *state.Model, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		id := m.HabitToDelete
		m.HabitToDelete = 0
		m.State = constants.StateHabits
		return DeleteHabitCmd(m.Store, id)
	case "n", "N", "esc", "q":
		m.HabitToDelete = 0
		m.State = constants.StateHabits
	}
	return nil
}
