package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drujensen/agenthub/internal/domain/services"
)

const (
	stateSelect = "chat/select"
	stateView   = "chat/view"
)

// TUI drives one chat session from the terminal: pick an agent, then chat
// until Esc resets back to the agent list.
type TUI struct {
	chatService services.ChatService
	sessionID   string

	selector AgentSelector
	chatView ChatView

	state string
}

func NewTUI(chatService services.ChatService, agentService services.AgentService) (TUI, error) {
	sess, err := chatService.CreateSession(context.Background(), "")
	if err != nil {
		return TUI{}, err
	}

	return TUI{
		chatService: chatService,
		sessionID:   sess.ID(),
		selector:    NewAgentSelector(agentService),
		chatView:    NewChatView(chatService, sess.ID()),
		state:       stateSelect,
	}, nil
}

func (t TUI) Init() tea.Cmd {
	return tea.Batch(
		t.selector.Init(),
		t.chatView.Init(),
	)
}

func (t TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case agentSelectedMsg:
		chat, err := t.chatService.SelectAgent(context.Background(), t.sessionID, msg.agentID)
		if err != nil {
			return t, func() tea.Msg { return errMsg(err) }
		}
		t.chatView.SetChat(chat)
		t.state = stateView
		return t, t.chatView.Init()

	case agentsCancelledMsg:
		return t, tea.Quit

	case resetSessionMsg:
		chat, err := t.chatService.ResetSession(context.Background(), t.sessionID)
		if err != nil {
			return t, func() tea.Msg { return errMsg(err) }
		}
		t.chatView.SetChat(chat)
		t.state = stateSelect
		return t, t.selector.loadAgentsCmd()

	case tea.WindowSizeMsg:
		var selectorCmd, chatCmd tea.Cmd
		t.selector, selectorCmd = t.selector.Update(msg)
		t.chatView, chatCmd = t.chatView.Update(msg)
		return t, tea.Batch(selectorCmd, chatCmd)
	}

	var cmd tea.Cmd
	switch t.state {
	case stateSelect:
		t.selector, cmd = t.selector.Update(msg)
	case stateView:
		t.chatView, cmd = t.chatView.Update(msg)
	}
	return t, cmd
}

func (t TUI) View() string {
	switch t.state {
	case stateSelect:
		return t.selector.View()
	case stateView:
		return t.chatView.View()
	}
	return ""
}

// Close discards the terminal session.
func (t TUI) Close() error {
	return t.chatService.DeleteSession(context.Background(), t.sessionID)
}
