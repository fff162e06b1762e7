package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/chat"
	"github.com/ecotrack/ecotrack-cli/internal/constants"
	"github.com/ecotrack/ecotrack-cli/internal/notify"
	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/handlers"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

type Model struct {
	state.Model
	keys KeyMap
}

func NewModel(s *store.Store, notifier notify.Provider) Model {
	poller := chat.NewPoller(s.Client(), constants.ChatPollInterval)
	return Model{
		Model: state.New(s, notifier, poller),
		keys:  DefaultKeyMap(),
	}
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Help, m.keys.Quit},
	}
}

// Init kicks off the first fetches so the dashboard fills in as responses
// land; until then the cached snapshot (if any) is shown.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		handlers.RefreshUserCmd(m.Store),
		handlers.RefreshAchievementsCmd(m.Store),
	)
}
