package events

import (
	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/kelindar/event"
)

// Event types
const (
	SessionEventType uint32 = 1
	AgentEventType   uint32 = 2
)

type SessionChange string

const (
	SessionMessageAppended SessionChange = "message_appended"
	SessionAgentSelected   SessionChange = "agent_selected"
	SessionReset           SessionChange = "reset"
)

// SessionEventData carries a snapshot of a chat session after it changed.
type SessionEventData struct {
	Change SessionChange
	Chat   *entities.Chat
}

type AgentChange string

const (
	AgentCreated AgentChange = "created"
	AgentUpdated AgentChange = "updated"
	AgentDeleted AgentChange = "deleted"
)

// AgentEventData wraps catalog changes made from the developer console.
type AgentEventData struct {
	Change AgentChange
	Agent  *entities.Agent
}

// Type implements the Event interface
func (s SessionEventData) Type() uint32 {
	return SessionEventType
}

// Type implements the Event interface
func (a AgentEventData) Type() uint32 {
	return AgentEventType
}

// PublishSessionEvent publishes a session change event
func PublishSessionEvent(change SessionChange, chat *entities.Chat) {
	event.Emit(SessionEventData{Change: change, Chat: chat})
}

// SubscribeToSessionEvents subscribes to session change events
func SubscribeToSessionEvents(handler func(data SessionEventData)) func() {
	return event.On(handler)
}

// PublishAgentEvent publishes an agent catalog event
func PublishAgentEvent(change AgentChange, agent *entities.Agent) {
	event.Emit(AgentEventData{Change: change, Agent: agent})
}

// SubscribeToAgentEvents subscribes to agent catalog events
func SubscribeToAgentEvents(handler func(data AgentEventData)) func() {
	return event.On(handler)
}
