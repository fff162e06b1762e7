package chatroom

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotrack/ecotrack-cli/internal/models"
)

// OpenCommunityMsg asks the app to start polling the chosen community.
type OpenCommunityMsg struct {
	ID int
}

// LeaveCommunityMsg asks the app to stop polling and return to the
// community list.
type LeaveCommunityMsg struct{}

// SendMessageMsg asks the app to post a message to the open community.
type SendMessageMsg struct {
	CommunityID int
	Content     string
}

type communityItem struct {
	community models.Community
}

func (i communityItem) Title() string { return i.community.Name }
func (i communityItem) Description() string {
	return fmt.Sprintf("%d members · join code %s", i.community.Members, i.community.JoinCode)
}
func (i communityItem) FilterValue() string { return i.community.Name }

type KeyMap struct {
	Open  key.Binding
	Leave key.Binding
	Send  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open chat"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to communities"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
	}
}

var (
	senderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	communities list.Model
	messages    viewport.Model
	input       textinput.Model
	keys        KeyMap

	open        bool
	communityID int
	width       int
	height      int
}

func New(communities []models.Community, width, height int) Model {
	l := list.New(toItems(communities), list.NewDefaultDelegate(), width, height)
	l.Title = "Communities"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "Say something…"
	ti.CharLimit = 500

	return Model{
		communities: l,
		messages:    viewport.New(width, height),
		input:       ti,
		keys:        DefaultKeyMap(),
		width:       width,
		height:      height,
	}
}

func toItems(communities []models.Community) []list.Item {
	items := make([]list.Item, len(communities))
	for i, c := range communities {
		items[i] = communityItem{community: c}
	}
	return items
}

// SetCommunities replaces the community list.
func (m *Model) SetCommunities(communities []models.Community) {
	m.communities.SetItems(toItems(communities))
}

// SetMessages replaces the open chat's transcript with the latest poll
// result and scrolls to the newest message.
func (m *Model) SetMessages(messages []models.ChatMessage) {
	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(senderStyle.Render(msg.Sender))
		b.WriteString(" " + timeStyle.Render(msg.CreatedAt))
		b.WriteString("\n" + msg.Content + "\n\n")
	}
	m.messages.SetContent(b.String())
	m.messages.GotoBottom()
}

// Open reports whether a community chat is active, which drives the
// poller lifecycle.
func (m Model) Open() bool { return m.open }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	keyMsg, isKey := msg.(tea.KeyMsg)

	if !m.open {
		if isKey && key.Matches(keyMsg, m.keys.Open) && m.communities.FilterState() != list.Filtering {
			if i, ok := m.communities.SelectedItem().(communityItem); ok {
				m.open = true
				m.communityID = i.community.ID
				m.input.Focus()
				m.SetMessages(nil)
				id := i.community.ID
				return m, func() tea.Msg { return OpenCommunityMsg{ID: id} }
			}
		}
		m.communities, cmd = m.communities.Update(msg)
		return m, cmd
	}

	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.Leave):
			m.open = false
			m.input.Blur()
			m.input.Reset()
			return m, func() tea.Msg { return LeaveCommunityMsg{} }
		case key.Matches(keyMsg, m.keys.Send):
			content := strings.TrimSpace(m.input.Value())
			if content == "" {
				return m, nil
			}
			m.input.Reset()
			id := m.communityID
			return m, func() tea.Msg { return SendMessageMsg{CommunityID: id, Content: content} }
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.open {
		if len(m.communities.Items()) == 0 && m.communities.FilterState() != list.Filtering {
			return "\n  You have not joined any communities yet."
		}
		return m.communities.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.messages.View(),
		m.input.View(),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.communities.SetSize(width, height)
	m.messages.Width = width
	m.messages.Height = height - 2
	m.input.Width = width - 4
}
