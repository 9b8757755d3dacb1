package tui

import (
	"github.com/drujensen/agenthub/internal/domain/entities"
)

type (
	agentsLoadedMsg    []*entities.Agent
	agentSelectedMsg   struct{ agentID string }
	agentsCancelledMsg struct{}
)

type (
	replyReceivedMsg struct{ chat *entities.Chat }
	resetSessionMsg  struct{}
)

type errMsg error
