package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/dustin/go-humanize"
)

// agentItem adapts an agent to the list delegate.
type agentItem struct {
	agent *entities.Agent
}

func (i agentItem) Title() string { return i.agent.Name }

func (i agentItem) Description() string {
	summary := strings.SplitN(strings.TrimSpace(i.agent.Description), "\n", 2)[0]
	return fmt.Sprintf("%s · %s conversations", summary, humanize.Comma(int64(i.agent.Usage)))
}

func (i agentItem) FilterValue() string { return i.agent.Name }

type AgentSelector struct {
	agentService services.AgentService
	list         list.Model
	width        int
	height       int
	err          error
}

func NewAgentSelector(agentService services.AgentService) AgentSelector {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select an Agent"
	return AgentSelector{
		agentService: agentService,
		list:         l,
	}
}

func (a AgentSelector) Init() tea.Cmd {
	return a.loadAgentsCmd()
}

func (a AgentSelector) Update(msg tea.Msg) (AgentSelector, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			item, ok := a.list.SelectedItem().(agentItem)
			if !ok {
				a.err = fmt.Errorf("no agent selected")
				return a, nil
			}
			a.err = nil
			return a, func() tea.Msg { return agentSelectedMsg{agentID: item.agent.ID} }
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc", "ctrl+c"))):
			return a, func() tea.Msg { return agentsCancelledMsg{} }
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height-2)
	case agentsLoadedMsg:
		items := make([]list.Item, len(msg))
		for i, agent := range msg {
			items[i] = agentItem{agent: agent}
		}
		a.list = list.New(items, list.NewDefaultDelegate(), a.width, a.height-2)
		a.list.Title = "Select an Agent"
		a.list.SetShowStatusBar(false)
		a.list.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown", "J"))
		a.list.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup", "K"))
		a.list.KeyMap.CursorUp = key.NewBinding(key.WithKeys("up", "k"))
		a.list.KeyMap.CursorDown = key.NewBinding(key.WithKeys("down", "j"))
		return a, nil
	case errMsg:
		a.err = msg
		return a, nil
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a AgentSelector) View() string {
	var sb strings.Builder
	sb.WriteString(a.list.View())
	if a.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render(fmt.Sprintf("\nError: %s", a.err)))
	}
	sb.WriteString("\nPress Enter to start chatting, Esc to quit")
	return sb.String()
}

func (a AgentSelector) loadAgentsCmd() tea.Cmd {
	return func() tea.Msg {
		agents, err := a.agentService.ListChatAgents(context.Background())
		if err != nil {
			return errMsg(err)
		}
		return agentsLoadedMsg(agents)
	}
}
