package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/services"
	"github.com/drujensen/agenthub/internal/domain/session"
)

// minInfoWidth is the narrowest terminal that still gets a side info panel.
const minInfoWidth = 80

type ChatView struct {
	chatService services.ChatService
	sessionID   string
	chat        *entities.Chat
	staged      []entities.Attachment

	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	userStyle lipgloss.Style
	asstStyle lipgloss.Style
	fileStyle lipgloss.Style

	info      string
	startTime time.Time
	err       error
	width     int
	height    int
}

func NewChatView(chatService services.ChatService, sessionID string) ChatView {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.SetWidth(30)
	ta.SetHeight(3)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ChatView{
		chatService: chatService,
		sessionID:   sessionID,
		viewport:    viewport.New(30, 5),
		textarea:    ta,
		spinner:     s,
		userStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		asstStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		fileStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		width:       30,
		height:      5,
	}
}

func (c ChatView) Init() tea.Cmd {
	return textarea.Blink
}

// SetChat replaces the displayed snapshot.
func (c *ChatView) SetChat(chat *entities.Chat) {
	c.chat = chat
	c.refresh()
}

func (c ChatView) Update(msg tea.Msg) (ChatView, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			return c, tea.Quit
		case "esc":
			return c, func() tea.Msg { return resetSessionMsg{} }
		case "ctrl+r":
			if len(c.staged) == 0 {
				c.staged = []entities.Attachment{entities.VoiceRecording()}
			} else {
				c.staged = nil
			}
			return c, nil
		case "pgup":
			c.viewport.HalfViewUp()
			return c, nil
		case "pgdown":
			c.viewport.HalfViewDown()
			return c, nil
		case "enter":
			return c.submit()
		}

		var cmd tea.Cmd
		c.textarea, cmd = c.textarea.Update(m)
		return c, cmd

	case spinner.TickMsg:
		if c.sending() {
			var cmd tea.Cmd
			c.spinner, cmd = c.spinner.Update(m)
			return c, cmd
		}
		return c, nil

	case replyReceivedMsg:
		c.SetChat(m.chat)
		return c, nil

	case errMsg:
		c.err = m
		return c, nil

	case tea.WindowSizeMsg:
		c.width = m.Width
		c.height = m.Height
		c.textarea.SetWidth(c.chatWidth() - 4)
		// textarea (3), its border (2), status line (1), error line (1), outer border (2)
		c.viewport.Height = max(c.height-11, 3)
		c.refresh()
		return c, nil

	case tea.MouseMsg:
		switch m.Button {
		case tea.MouseButtonWheelUp:
			c.viewport.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			c.viewport.ScrollDown(3)
		}
		return c, nil
	}

	return c, nil
}

// submit hands the typed text to the session. Empty and overlapping
// submissions are dropped without a message.
func (c ChatView) submit() (ChatView, tea.Cmd) {
	ctx := context.Background()
	pending, err := c.chatService.SendMessage(ctx, c.sessionID, c.textarea.Value(), c.staged)
	if err != nil {
		switch err.(type) {
		case *errs.ValidationError, *errs.BusyError:
			return c, nil
		default:
			c.err = err
			return c, nil
		}
	}

	c.textarea.Reset()
	c.staged = nil
	c.err = nil
	c.startTime = time.Now()

	if sess, err := c.chatService.GetSession(ctx, c.sessionID); err == nil {
		c.SetChat(sess.Snapshot())
	}

	return c, tea.Batch(waitReplyCmd(c.chatService, c.sessionID, pending), c.spinner.Tick)
}

func (c ChatView) sending() bool {
	return c.chat != nil && c.chat.Sending
}

func (c ChatView) chatWidth() int {
	if c.hasInfo() && c.width >= minInfoWidth {
		return c.width * 3 / 5
	}
	return c.width
}

func (c ChatView) hasInfo() bool {
	return c.chat != nil && c.chat.LatestInfo != nil
}

func (c *ChatView) refresh() {
	c.viewport.Width = c.chatWidth() - 4
	c.textarea.SetWidth(c.chatWidth() - 4)

	if c.chat == nil {
		c.viewport.SetContent("")
		return
	}

	var sb strings.Builder
	for _, message := range c.chat.Messages {
		if message.Role == entities.RoleUser {
			sb.WriteString(c.userStyle.Render("You: ") + message.Content + "\n")
		} else {
			sb.WriteString(c.asstStyle.Render(c.chat.AgentName+": ") + message.Content + "\n")
		}
		for _, a := range message.Attachments {
			sb.WriteString(c.fileStyle.Render("  + "+a.Name) + "\n")
		}
	}
	c.viewport.SetContent(lipgloss.NewStyle().Width(c.viewport.Width).Render(sb.String()))
	c.viewport.GotoBottom()

	c.info = ""
	if c.hasInfo() && c.width >= minInfoWidth {
		rendered, err := renderInfo(*c.chat.LatestInfo, c.width-c.chatWidth()-4)
		if err != nil {
			c.err = err
			return
		}
		c.info = rendered
	}
}

func (c ChatView) View() string {
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6"))

	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4"))

	width := c.chatWidth()

	var sb strings.Builder
	sb.WriteString(border.Width(width - 4).Height(c.viewport.Height).Render(c.viewport.View()))
	sb.WriteString("\n")
	sb.WriteString(border.Width(width - 4).Height(c.textarea.Height()).Render(c.textarea.View()))

	switch {
	case c.sending():
		elapsed := time.Since(c.startTime).Round(time.Second)
		sb.WriteString("\n" + c.spinner.View() + fmt.Sprintf(" Typing... (%ds)", int(elapsed.Seconds())))
	case len(c.staged) > 0:
		sb.WriteString("\n" + c.fileStyle.Render("Attached: "+c.staged[0].Name+" (Ctrl+R to remove)"))
	default:
		instructions := "Enter to send, Ctrl+R voice note, Esc to change agent, Ctrl+C to exit."
		sb.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions))
	}

	if c.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render(fmt.Sprintf("\n%s", c.err.Error())))
	}

	chat := outerStyle.Width(width - 2).Render(sb.String())
	if c.info == "" {
		return chat
	}

	panel := outerStyle.Width(c.width - width - 2).Render(c.info)
	return lipgloss.JoinHorizontal(lipgloss.Top, chat, panel)
}

// renderInfo renders an info panel payload for the terminal.
func renderInfo(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

func waitReplyCmd(cs services.ChatService, sessionID string, pending *session.Pending) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if _, err := pending.Wait(ctx); err != nil {
			if _, ok := err.(*errs.CanceledError); ok {
				return nil
			}
			return errMsg(err)
		}
		sess, err := cs.GetSession(ctx, sessionID)
		if err != nil {
			return errMsg(err)
		}
		return replyReceivedMsg{chat: sess.Snapshot()}
	}
}
