package entities

import "time"

// Chat is a point-in-time view of one chat session, handed to display
// surfaces. Mutating it has no effect on the session.
type Chat struct {
	ID         string    `json:"id"`
	AgentID    string    `json:"agent_id,omitempty"`
	AgentName  string    `json:"agent_name,omitempty"`
	View       string    `json:"view"`
	Messages   []Message `json:"messages"`
	Sending    bool      `json:"sending"`
	LatestInfo *string   `json:"latest_info,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Chat) HasAgent() bool {
	return c.AgentID != ""
}

// LastMessage returns the most recently appended message, or nil.
func (c *Chat) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}
