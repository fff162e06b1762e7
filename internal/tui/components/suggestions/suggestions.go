package suggestions

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/models"
	"github.com/ecotrack/ecotrack-cli/internal/render"
)

// StartHabitMsg asks the app to save the suggestion's title as a new habit.
type StartHabitMsg struct {
	Title string
}

type Item struct {
	Suggestion models.Suggestion
}

func (i Item) Title() string       { return i.Suggestion.Title }
func (i Item) Description() string { return i.Suggestion.CarbonReduction + " — " + i.Suggestion.Reason }
func (i Item) FilterValue() string { return i.Suggestion.Title }

type KeyMap struct {
	Start key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "start this habit"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(suggestions []models.Suggestion, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Suggestions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Start}
	}

	m := Model{
		list: l,
		keys: keys,
	}
	m.SetSuggestions(suggestions)
	return m
}

func toItems(suggestions []models.Suggestion) []list.Item {
	items := make([]list.Item, len(suggestions))
	for i, s := range suggestions {
		items[i] = Item{Suggestion: s}
	}
	return items
}

// SetSuggestions replaces the displayed cards. An empty list — the server
// had nothing, or the fetch failed — falls back to the built-in defaults
// so there is always something to start.
func (m *Model) SetSuggestions(suggestions []models.Suggestion) {
	if len(suggestions) == 0 {
		suggestions = render.DefaultSuggestions()
	}
	m.list.SetItems(toItems(suggestions))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(keyMsg, m.keys.Start) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return StartHabitMsg{Title: i.Suggestion.Title} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
