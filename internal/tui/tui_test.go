package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/drujensen/agenthub/internal/domain/views"
	"github.com/drujensen/agenthub/internal/impl/fixtures"
	repositories_memory "github.com/drujensen/agenthub/internal/impl/repositories/memory"
	"github.com/drujensen/agenthub/internal/impl/responders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTUI(t *testing.T) (TUI, services.ChatService) {
	t.Helper()

	catalog, err := fixtures.Default()
	require.NoError(t, err)

	logger := zap.NewNop()
	repo := repositories_memory.NewMemoryAgentRepository(catalog.AgentSeed())
	agentService := services.NewAgentService(repo, 0, logger)
	chatService := services.NewChatService(agentService, responders.NewMock(catalog.Welcome, catalog.Info), catalog.QuickPrompts, 10*time.Millisecond, logger)
	t.Cleanup(chatService.Close)

	m, err := NewTUI(chatService, agentService)
	require.NoError(t, err)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, chatService
}

func update(t *testing.T, m TUI, msg tea.Msg) (TUI, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(TUI)
	require.True(t, ok)
	return next, cmd
}

// collect runs cmd and any batched commands, returning every message.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func selectAgent(t *testing.T, m TUI, id string) TUI {
	t.Helper()
	m, _ = update(t, m, agentSelectedMsg{agentID: id})
	require.Equal(t, stateView, m.state)
	return m
}

func TestTUI_SelectAgent(t *testing.T) {
	m, _ := newTestTUI(t)
	assert.Equal(t, stateSelect, m.state)

	msg := m.selector.loadAgentsCmd()()
	loaded, ok := msg.(agentsLoadedMsg)
	require.True(t, ok)
	for _, agent := range loaded {
		assert.NotEqual(t, entities.AgentStatusDisabled, agent.Status)
	}
	assert.Len(t, loaded, 4)

	m, _ = update(t, m, loaded)
	assert.Contains(t, m.View(), "Customer Support Assistant")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, agentSelectedMsg{agentID: "1"}, cmd())

	m, _ = update(t, m, cmd())
	assert.Equal(t, stateView, m.state)
	require.NotNil(t, m.chatView.chat)
	assert.Equal(t, "Customer Support Assistant", m.chatView.chat.AgentName)
	assert.Len(t, m.chatView.chat.Messages, 1)
}

func TestTUI_SelectUnknownAgent(t *testing.T) {
	m, _ := newTestTUI(t)

	m, cmd := update(t, m, agentSelectedMsg{agentID: "4"})
	assert.Equal(t, stateSelect, m.state)
	require.NotNil(t, cmd)
	_, isErr := cmd().(errMsg)
	assert.True(t, isErr)
}

func TestTUI_SendMessage(t *testing.T) {
	m, _ := newTestTUI(t)
	m = selectAgent(t, m, "1")

	m.chatView.textarea.SetValue("hello")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.chatView.textarea.Value())
	require.Len(t, m.chatView.chat.Messages, 2)
	assert.Equal(t, "hello", m.chatView.chat.Messages[1].Content)
	assert.True(t, m.chatView.chat.Sending)
	assert.Contains(t, m.View(), "Typing...")

	// a second submission while the reply is outstanding is dropped
	m.chatView.textarea.SetValue("again")
	m, busyCmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, busyCmd)
	assert.Len(t, m.chatView.chat.Messages, 2)
	assert.NoError(t, m.chatView.err)

	var reply *replyReceivedMsg
	for _, msg := range collect(cmd) {
		if r, ok := msg.(replyReceivedMsg); ok {
			reply = &r
		}
	}
	require.NotNil(t, reply)

	m, _ = update(t, m, *reply)
	require.Len(t, m.chatView.chat.Messages, 3)
	assert.False(t, m.chatView.chat.Sending)
	require.NotNil(t, m.chatView.chat.LatestInfo)
	assert.Contains(t, m.chatView.info, "Response")
	assert.Contains(t, m.View(), "You said")
}

func TestTUI_EmptySubmissionIgnored(t *testing.T) {
	m, _ := newTestTUI(t)
	m = selectAgent(t, m, "1")

	m.chatView.textarea.SetValue("   ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Len(t, m.chatView.chat.Messages, 1)
	assert.NoError(t, m.chatView.err)
}

func TestTUI_VoiceRecording(t *testing.T) {
	m, chatService := newTestTUI(t)
	m = selectAgent(t, m, "2")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Len(t, m.chatView.staged, 1)
	assert.Contains(t, m.View(), "voice-recording.mp3")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.chatView.staged)

	sess, err := chatService.GetSession(context.Background(), m.sessionID)
	require.NoError(t, err)
	messages := sess.Messages()
	require.Len(t, messages, 2)
	require.Len(t, messages[1].Attachments, 1)
	assert.Equal(t, "voice-recording.mp3", messages[1].Attachments[0].Name)
	assert.Equal(t, "audio/mpeg", messages[1].Attachments[0].Type)

	collect(cmd)
}

func TestTUI_VoiceRecordingToggle(t *testing.T) {
	m, _ := newTestTUI(t)
	m = selectAgent(t, m, "1")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.chatView.staged)
}

func TestTUI_ResetReturnsToSelection(t *testing.T) {
	m, chatService := newTestTUI(t)
	m = selectAgent(t, m, "1")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, resetSessionMsg{}, cmd())

	m, cmd = update(t, m, resetSessionMsg{})
	assert.Equal(t, stateSelect, m.state)
	require.NotNil(t, cmd)
	_, ok := cmd().(agentsLoadedMsg)
	assert.True(t, ok)

	sess, err := chatService.GetSession(context.Background(), m.sessionID)
	require.NoError(t, err)
	assert.Equal(t, views.ChatSelection, sess.View())
	assert.Empty(t, sess.Messages())
}

func TestTUI_CancelSelectionQuits(t *testing.T) {
	m, _ := newTestTUI(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, cmd = update(t, m, cmd())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestTUI_Close(t *testing.T) {
	m, chatService := newTestTUI(t)

	require.NoError(t, m.Close())
	_, err := chatService.GetSession(context.Background(), m.sessionID)
	assert.Error(t, err)
}
