package handlers

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ecotrack/ecotrack-cli/internal/store"
	"github.com/ecotrack/ecotrack-cli/internal/tui/components/chatroom"
	"github.com/ecotrack/ecotrack-cli/internal/tui/state"
)

// MessageSentMsg carries the outcome of posting a chat message.
type MessageSentMsg struct {
	Err error
}

// SendMessageCmd posts a message off the event loop; the next poll tick
// picks it up, there is no local echo.
func SendMessageCmd(s *store.Store, communityID int, content string) tea.Cmd {
	return func() tea.Msg {
		return MessageSentMsg{Err: s.Client().SendMessage(context.Background(), communityID, content)}
	}
}

// HandleChatMessages reacts to the chat component's lifecycle and send
// messages. The poller runs only while a community chat is open.
func HandleChatMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case chatroom.OpenCommunityMsg:
		m.Poller.Start(msg.ID)
		return true, WaitForChatCmd(m.Poller)

	case chatroom.LeaveCommunityMsg:
		m.Poller.Stop()
		return true, nil

	case chatroom.SendMessageMsg:
		return true, SendMessageCmd(m.Store, msg.CommunityID, msg.Content)

	case MessageSentMsg:
		if msg.Err != nil {
			Fail(m, "Failed to send message", msg.Err)
		} else {
			m.Notice = ""
		}
		return true, nil

	case ChatPollMsg:
		if msg.Update.Err != nil {
			Fail(m, "Chat unavailable", msg.Update.Err)
		} else {
			m.Chat.SetMessages(msg.Update.Messages)
		}
		if m.Poller.Running() {
			return true, WaitForChatCmd(m.Poller)
		}
		return true, nil

	case CommunitiesMsg:
		if msg.Err != nil {
			Fail(m, "Failed to load communities", msg.Err)
		} else {
			m.Chat.SetCommunities(msg.List)
		}
		return true, nil
	}
	return false, nil
}
