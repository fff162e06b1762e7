package handlers

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ecotrack/ecotrack-cli/internal/chat"
	"github.com/ecotrack/ecotrack-cli/internal/errors"
	"github.com/ecotrack/ecotrack-cli/internal/models"
	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

// UserDataMsg carries a resolved user data fetch. Seq lets the store
// discard it when a newer fetch already landed.
type UserDataMsg struct {
	Seq   uint64
	State models.UserState
	Err   error
}

// AchievementsMsg carries a resolved achievements fetch.
type AchievementsMsg struct {
	Seq  uint64
	List []models.Achievement
	Err  error
}

// SuggestionsMsg carries a resolved suggestions fetch.
type SuggestionsMsg struct {
	Seq  uint64
	List []models.Suggestion
	Err  error
}

// CommunitiesMsg carries the community list for the chat tab.
type CommunitiesMsg struct {
	List []models.Community
	Err  error
}

// ChatPollMsg wraps one chat poll result.
type ChatPollMsg struct {
	Update chat.Update
}

// RefreshUserCmd issues a sequence-tagged user data fetch. The tag is
// claimed before the request goes out so a slower, earlier fetch can never
// overwrite a faster, later one.
func RefreshUserCmd(s *store.Store) tea.Cmd {
	seq := s.NextUserSeq()
	return func() tea.Msg {
		userState, err := s.Client().FetchUserData(context.Background())
		return UserDataMsg{Seq: seq, State: userState, Err: err}
	}
}

// RefreshAchievementsCmd issues a sequence-tagged achievements fetch.
func RefreshAchievementsCmd(s *store.Store) tea.Cmd {
	seq := s.NextAchievementsSeq()
	return func() tea.Msg {
		list, err := s.Client().FetchAchievements(context.Background())
		return AchievementsMsg{Seq: seq, List: list, Err: err}
	}
}

// RefreshSuggestionsCmd issues a sequence-tagged suggestions fetch.
func RefreshSuggestionsCmd(s *store.Store) tea.Cmd {
	seq := s.NextSuggestionsSeq()
	return func() tea.Msg {
		list, err := s.Client().FetchSuggestions(context.Background())
		return SuggestionsMsg{Seq: seq, List: list, Err: err}
	}
}

// FetchCommunitiesCmd loads the community list for the chat tab.
func FetchCommunitiesCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		list, err := s.Client().FetchCommunities(context.Background())
		return CommunitiesMsg{List: list, Err: err}
	}
}

// WaitForChatCmd blocks on the next poll result. Re-issued after each
// delivery while the chat view is open; when the session stops first the
// waiter ends without a message instead of hanging on the channel.
func WaitForChatCmd(poller *chat.Poller) tea.Cmd {
	done := poller.Done()
	return func() tea.Msg {
		select {
		case update := <-poller.Updates():
			return ChatPollMsg{Update: update}
		case <-done:
			return nil
		}
	}
}

// Fail records a user-visible notice for a failed action. Errors stop
// here; nothing above the handler layer sees them.
func Fail(m *state.Model, action string, err error) {
	m.Notice = errors.Notice(action, err)
}

// NewHabitForm creates the add/edit habit form.
func NewHabitForm(fm *state.HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit text cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

// SyncFromStore pushes the store's current snapshot into every component
// that renders it.
func SyncFromStore(m *state.Model) {
	if user, ok := m.Store.User(); ok {
		m.Dashboard.SetState(user, m.Store.Achievements())
		m.HabitList.SetHabits(user.Habits)
	}
	m.Gallery.SetAchievements(m.Store.Achievements())
	m.Suggestions.SetSuggestions(m.Store.Suggestions())
}
