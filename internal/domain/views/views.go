// Package views holds the closed set of screens each dashboard can show and
// the transitions between them.
package views

import "github.com/drujensen/agenthub/internal/domain/errs"

type ChatView int

const (
	ChatSelection ChatView = iota
	ChatConversation
)

func (v ChatView) String() string {
	switch v {
	case ChatSelection:
		return "selection"
	case ChatConversation:
		return "conversation"
	}
	return "unknown"
}

// SelectAgent is valid from both views; picking another agent from the
// conversation header starts a new conversation.
func (v ChatView) SelectAgent() ChatView {
	return ChatConversation
}

func (v ChatView) Back() ChatView {
	return ChatSelection
}

type ConsoleView int

const (
	ConsoleDashboard ConsoleView = iota
	ConsoleDetails
	ConsoleCreator
)

func (v ConsoleView) String() string {
	switch v {
	case ConsoleDashboard:
		return "dashboard"
	case ConsoleDetails:
		return "details"
	case ConsoleCreator:
		return "creator"
	}
	return "unknown"
}

type ConsoleAction int

const (
	OpenDetails ConsoleAction = iota
	OpenCreator
	Back
	AgentCreated
	AgentSaved
)

func (a ConsoleAction) String() string {
	switch a {
	case OpenDetails:
		return "open details"
	case OpenCreator:
		return "open creator"
	case Back:
		return "go back"
	case AgentCreated:
		return "finish creating"
	case AgentSaved:
		return "save"
	}
	return "unknown action"
}

var consoleTransitions = map[ConsoleView]map[ConsoleAction]ConsoleView{
	ConsoleDashboard: {
		OpenDetails: ConsoleDetails,
		OpenCreator: ConsoleCreator,
	},
	ConsoleDetails: {
		Back:       ConsoleDashboard,
		AgentSaved: ConsoleDetails,
	},
	ConsoleCreator: {
		Back:         ConsoleDashboard,
		AgentCreated: ConsoleDetails,
	},
}

// Next applies action to v. Actions that have no meaning on the current
// screen are rejected rather than silently ignored.
func (v ConsoleView) Next(action ConsoleAction) (ConsoleView, error) {
	next, ok := consoleTransitions[v][action]
	if !ok {
		return v, errs.ValidationErrorf("cannot %s from the %s view", action, v)
	}
	return next, nil
}
