package checkin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecotrack/ecotrack-cli/internal/questionnaire"
)

// SubmitMsg asks the app to submit the completed check-in.
type SubmitMsg struct{}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous question"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next question"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "select option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
	}
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true).
			Padding(1, 0)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	form     *questionnaire.Form
	cursor   int // focused question
	option   int // focused option within the question
	keys     KeyMap
	progress progress.Model
}

func New(form *questionnaire.Form) Model {
	p := progress.New(
		progress.WithGradient("#1a7a3a", "#3ddc84"),
		progress.WithWidth(30),
	)
	return Model{
		form:     form,
		keys:     DefaultKeyMap(),
		progress: p,
	}
}

// Form exposes the state machine so submit handlers can drive it.
func (m Model) Form() *questionnaire.Form { return m.form }

// Reset swaps in a fresh form, used on calendar-day rollover.
func (m *Model) Reset(form *questionnaire.Form) {
	m.form = form
	m.cursor = 0
	m.option = 0
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.form.State() == questionnaire.SubmittedToday || m.form.State() == questionnaire.Submitting {
		return m, nil
	}

	questions := m.form.Questions()
	q := questions[m.cursor]

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.option = m.selectedOrFirst(questions[m.cursor].ID)
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(questions)-1 {
			m.cursor++
			m.option = m.selectedOrFirst(questions[m.cursor].ID)
		}
	case key.Matches(keyMsg, m.keys.Left):
		if m.option > 0 {
			m.option--
			m.form.Select(q.ID, m.option)
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.option < len(q.Options)-1 {
			m.option++
		}
		m.form.Select(q.ID, m.option)
	case key.Matches(keyMsg, m.keys.Submit):
		if m.form.State() == questionnaire.FullyAnswered {
			return m, func() tea.Msg { return SubmitMsg{} }
		}
	}
	return m, nil
}

func (m Model) selectedOrFirst(questionID string) int {
	if idx, ok := m.form.Selected(questionID); ok {
		return idx
	}
	return 0
}

func (m Model) View() string {
	if m.form.State() == questionnaire.SubmittedToday {
		return doneStyle.Render("✓ Daily check-in submitted. See you tomorrow!")
	}

	var b strings.Builder
	answered, total := m.form.Answered()
	b.WriteString(fmt.Sprintf("%d/%d questions answered\n", answered, total))
	b.WriteString(m.progress.ViewAs(m.form.Progress()) + "\n\n")

	for qi, q := range m.form.Questions() {
		prompt := q.Prompt
		if qi == m.cursor {
			prompt = cursorStyle.Render("› ") + promptStyle.Render(prompt)
		} else {
			prompt = "  " + promptStyle.Render(prompt)
		}
		b.WriteString(prompt + "\n")

		selected, hasSelection := m.form.Selected(q.ID)
		var opts []string
		for oi, opt := range q.Options {
			label := opt.Label
			switch {
			case hasSelection && oi == selected:
				label = selectedStyle.Render("(•) " + label)
			case qi == m.cursor && oi == m.option:
				label = cursorStyle.Render("( ) " + label)
			default:
				label = "( ) " + label
			}
			opts = append(opts, label)
		}
		b.WriteString("  " + strings.Join(opts, "  ") + "\n\n")
	}

	if m.form.State() == questionnaire.Submitting {
		b.WriteString(hintStyle.Render("Submitting…"))
	} else if m.form.State() == questionnaire.FullyAnswered {
		b.WriteString(hintStyle.Render("Press enter to submit your check-in."))
	} else {
		b.WriteString(hintStyle.Render("Answer every question to enable submit."))
	}
	return b.String()
}
