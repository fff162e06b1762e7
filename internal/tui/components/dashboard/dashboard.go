package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/models"
	"github.com/ecotrack/ecotrack-cli/internal/render"
)

// RefreshMsg asks the app to re-fetch user data and achievements.
type RefreshMsg struct{}

type KeyMap struct {
	Refresh key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

type Model struct {
	user         models.UserState
	achievements []models.Achievement
	loaded       bool
	keys         KeyMap
}

func New() Model {
	return Model{keys: DefaultKeyMap()}
}

// SetState installs a fresh snapshot from the store.
func (m *Model) SetState(user models.UserState, achievements []models.Achievement) {
	m.user = user
	m.achievements = achievements
	m.loaded = true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Refresh) {
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		return "\n  Loading your dashboard…\n  Press 'r' to retry."
	}
	return render.Dashboard(m.user, m.achievements)
}
