package entities

import (
	"time"

	"github.com/google/uuid"
)

type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
	AgentStatusPending  AgentStatus = "pending"
	AgentStatusDisabled AgentStatus = "disabled"
)

// Valid reports whether s is one of the known statuses.
func (s AgentStatus) Valid() bool {
	switch s {
	case AgentStatusActive, AgentStatusInactive, AgentStatusPending, AgentStatusDisabled:
		return true
	}
	return false
}

type Agent struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Usage       int          `json:"usage" yaml:"usage"`
	Status      AgentStatus  `json:"status" yaml:"status"`
	Version     string       `json:"version,omitempty" yaml:"version,omitempty"`
	Category    string       `json:"category,omitempty" yaml:"category,omitempty"`
	Author      string       `json:"author,omitempty" yaml:"author,omitempty"`
	Files       []Attachment `json:"files,omitempty" yaml:"files,omitempty"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	LastUpdated time.Time    `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
}

func NewAgent(name, description string, status AgentStatus) *Agent {
	now := time.Now()
	return &Agent{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// Selectable reports whether end users may start a chat with the agent.
func (a *Agent) Selectable() bool {
	return a.Status != AgentStatusDisabled
}

func (a *Agent) IsActive() bool {
	return a.Status == AgentStatusActive
}

// Clone returns a copy that does not share the Files slice.
func (a *Agent) Clone() *Agent {
	c := *a
	if a.Files != nil {
		c.Files = append([]Attachment(nil), a.Files...)
	}
	return &c
}
