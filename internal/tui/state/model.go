package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/ecotrack/ecotrack-cli/internal/chat"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/notify"
	"github.com/ecotrack/ecotrack-cli/internal/questionnaire"
	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/chatroom"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/checkin"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/dashboard"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/gallery"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/habitlist"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/suggestions"
)

// HabitFormModel backs the add/edit habit form.
type HabitFormModel struct {
	Text string
}

// Model is the shared state for the TUI. Handlers mutate it; the top-level
// model owns rendering.
type Model struct {
	Store    *store.Store
	Notifier notify.Provider
	Poller   *chat.Poller

	State         constants.SessionState
	PreviousState constants.SessionState
	Help          help.Model

	Dashboard   dashboard.Model
	HabitList   habitlist.Model
	Checkin     checkin.Model
	Gallery     gallery.Model
	Suggestions suggestions.Model
	Chat        chatroom.Model

	Form           *huh.Form
	HabitForm      *HabitFormModel
	EditingHabitID int // 0 while adding
	HabitToDelete  int

	// Notice is the status-line message shown after a failed or notable
	// action; cleared on the next successful one.
	Notice string

	Quitting bool
	Width    int
	Height   int
}

// New builds the initial state from whatever the store already holds
// (cached snapshot or nothing); the first refresh command fills it in.
func New(s *store.Store, notifier notify.Provider, poller *chat.Poller) Model {
	user, _ := s.User()
	achievements := s.Achievements()

	dm := dashboard.New()
	if _, ok := s.User(); ok {
		dm.SetState(user, achievements)
	}

	return Model{
		Store:       s,
		Notifier:    notifier,
		Poller:      poller,
		State:       constants.StateDashboard,
		Help:        help.New(),
		Dashboard:   dm,
		HabitList:   habitlist.New(user.Habits, 0, 0),
		Checkin:     checkin.New(questionnaire.NewForm(s.CheckedInToday())),
		Gallery:     gallery.New(achievements, 0, 0),
		Suggestions: suggestions.New(nil, 0, 0),
		Chat:        chatroom.New(nil, 0, 0),
	}
}
