package entities

import (
	"fmt"
	"time"
)

type UploadReceipt struct {
	AgentID    string       `json:"agent_id,omitempty"`
	Files      []Attachment `json:"files"`
	TotalSize  int64        `json:"total_size"`
	ReceivedAt time.Time    `json:"received_at"`
}

func NewUploadReceipt(agentID string, files []Attachment) *UploadReceipt {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return &UploadReceipt{
		AgentID:    agentID,
		Files:      CopyAttachments(files),
		TotalSize:  total,
		ReceivedAt: time.Now(),
	}
}

func (r *UploadReceipt) Summary() string {
	return fmt.Sprintf("Successfully uploaded %d file(s)", len(r.Files))
}
