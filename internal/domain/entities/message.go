package entities

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Attachment is file metadata only. Contents are never read or kept.
type Attachment struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Size int64  `json:"size,omitempty" yaml:"size,omitempty"`
}

type Message struct {
	ID          string       `json:"id"`
	Seq         uint64       `json:"seq"`
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	Info        *string      `json:"info,omitempty"`
	Attachments []Attachment `json:"attachments"`
	Timestamp   time.Time    `json:"timestamp"`
}

// NewMessage builds a message with a time-ordered id. Seq is assigned by the
// session when the message is appended.
func NewMessage(role Role, content string, attachments []Attachment) *Message {
	return &Message{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Role:        role,
		Content:     content,
		Attachments: CopyAttachments(attachments),
		Timestamp:   time.Now(),
	}
}

func (m *Message) HasInfo() bool {
	return m.Info != nil
}

func (m *Message) WithInfo(info string) *Message {
	m.Info = &info
	return m
}

// Clone returns a deep copy so callers cannot reach into a session's log.
func (m Message) Clone() Message {
	m.Attachments = CopyAttachments(m.Attachments)
	if m.Info != nil {
		info := *m.Info
		m.Info = &info
	}
	return m
}

func CopyAttachments(attachments []Attachment) []Attachment {
	out := make([]Attachment, len(attachments))
	copy(out, attachments)
	return out
}
