package interfaces

import "github.com/drujensen/agenthub/internal/domain/entities"

// Responder produces the agent's reply to a user message. Implementations
// must not fail; the chat session has no error path for replies.
type Responder interface {
	Welcome(agent *entities.Agent) *entities.Message
	Respond(agent *entities.Agent, prompt entities.Message) *entities.Message
}
