package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/models"
	"github.com/ecotrack/ecotrack-cli/internal/render"
)

// RefreshMsg asks the app to re-fetch the achievement list.
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
	viewport viewport.Model
	keys     KeyMap
	empty    bool
}

func New(achievements []models.Achievement, width, height int) Model {
	vp := viewport.New(width, height)
	m := Model{
		viewport: vp,
		keys:     DefaultKeyMap(),
	}
	m.SetAchievements(achievements)
	return m
}

// SetAchievements replaces the displayed grid after a store refresh.
func (m *Model) SetAchievements(achievements []models.Achievement) {
	m.empty = len(achievements) == 0
	m.viewport.SetContent(render.AchievementGrid(achievements))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Refresh) {
			return m, func() tea.Msg { return RefreshMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.empty {
		return "\n  No achievements yet.\n  Press 'r' to refresh."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}
