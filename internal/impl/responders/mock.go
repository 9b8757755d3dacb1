package responders

import (
	"fmt"
	"html"
	"strings"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/interfaces"
)

const agentPlaceholder = "{agent}"

// Mock stands in for a model backend. Replies echo the prompt and always carry
// the same info payload.
type Mock struct {
	welcome string
	info    string
}

func NewMock(welcome, info string) *Mock {
	return &Mock{
		welcome: welcome,
		info:    info,
	}
}

// Welcome greets the user on behalf of agent. An empty welcome template
// starts the conversation with an empty log.
func (m *Mock) Welcome(agent *entities.Agent) *entities.Message {
	if m.welcome == "" {
		return nil
	}
	return entities.NewMessage(entities.RoleAgent, strings.ReplaceAll(m.welcome, agentPlaceholder, agent.Name), nil)
}

func (m *Mock) Respond(agent *entities.Agent, prompt entities.Message) *entities.Message {
	reply := entities.NewMessage(entities.RoleAgent, replyContent(agent, prompt), nil)
	// info is rendered without escaping, so the user-supplied name is escaped here
	if m.info != "" {
		reply.WithInfo(strings.ReplaceAll(m.info, agentPlaceholder, html.EscapeString(agent.Name)))
	}
	return reply
}

func replyContent(agent *entities.Agent, prompt entities.Message) string {
	text := strings.TrimSpace(prompt.Content)
	if text == "" {
		return fmt.Sprintf("I received %d file(s): %s. %s will review them shortly.",
			len(prompt.Attachments), attachmentNames(prompt.Attachments), agent.Name)
	}

	content := fmt.Sprintf("You said: %q. This is a simulated response from %s.", text, agent.Name)
	if n := len(prompt.Attachments); n > 0 {
		content += fmt.Sprintf(" I also received %d file(s): %s.", n, attachmentNames(prompt.Attachments))
	}
	return content
}

func attachmentNames(attachments []entities.Attachment) string {
	names := make([]string, len(attachments))
	for i, a := range attachments {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

var _ interfaces.Responder = &Mock{}
