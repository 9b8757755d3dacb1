// Package session owns the message log of a single chat conversation.
//
// A Session accepts one submission at a time. Each accepted submission
// appends the user's message immediately and the agent's reply after a
// delay. Switching agents or resetting the session invalidates any reply
// still in flight.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/events"
	"github.com/drujensen/agenthub/internal/domain/interfaces"
	"github.com/drujensen/agenthub/internal/domain/views"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultDelay = 1500 * time.Millisecond

// Notifier receives a snapshot every time the session changes. It is called
// without the session lock held.
type Notifier func(change events.SessionChange, chat *entities.Chat)

type Option func(*Session)

func WithDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Session) {
		if n != nil {
			s.notify = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type Session struct {
	id        string
	responder interfaces.Responder
	delay     time.Duration
	notify    Notifier
	logger    *zap.Logger

	mu         sync.Mutex
	view       views.ChatView
	agent      *entities.Agent
	messages   []entities.Message
	seq        uint64
	sending    bool
	latestInfo *string
	generation uint64
	cancel     context.CancelFunc
	updatedAt  time.Time
}

func New(responder interfaces.Responder, opts ...Option) *Session {
	s := &Session{
		id:        uuid.New().String(),
		responder: responder,
		delay:     DefaultDelay,
		notify:    events.PublishSessionEvent,
		logger:    zap.NewNop(),
		view:      views.ChatSelection,
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) View() views.ChatView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Agent returns a copy of the selected agent, or nil on the selection view.
func (s *Session) Agent() *entities.Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agent == nil {
		return nil
	}
	return s.agent.Clone()
}

// Messages returns a copy of the log in append order.
func (s *Session) Messages() []entities.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyMessagesLocked()
}

func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// LatestInfo returns the info payload of the most recent agent message that
// carried one.
func (s *Session) LatestInfo() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestInfo == nil {
		return "", false
	}
	return *s.latestInfo, true
}

func (s *Session) Snapshot() *entities.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Submit appends a user message and schedules the agent's reply. Empty
// submissions and submissions made while a reply is pending are rejected
// without touching the log.
func (s *Session) Submit(text string, attachments []entities.Attachment) (*Pending, error) {
	pending, snap, err := s.submit(text, attachments)
	if err != nil {
		s.logger.Debug("Submission rejected", zap.String("session_id", s.id), zap.Error(err))
		return nil, err
	}
	s.notify(events.SessionMessageAppended, snap)
	return pending, nil
}

func (s *Session) submit(text string, attachments []entities.Attachment) (*Pending, *entities.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(text) == "" && len(attachments) == 0 {
		return nil, nil, errs.ValidationErrorf("message text or at least one attachment is required")
	}
	if s.agent == nil {
		return nil, nil, errs.ValidationErrorf("no agent selected")
	}
	if s.sending {
		return nil, nil, errs.BusyErrorf("a reply is already pending for session %s", s.id)
	}

	prompt := s.appendLocked(*entities.NewMessage(entities.RoleUser, text, attachments))
	s.sending = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	pending := newPending(prompt)
	go s.synthesize(ctx, cancel, s.generation, s.agent.Clone(), prompt, pending)

	return pending, s.snapshotLocked(), nil
}

func (s *Session) synthesize(ctx context.Context, cancel context.CancelFunc, generation uint64, agent *entities.Agent, prompt entities.Message, pending *Pending) {
	defer cancel()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		pending.resolve(nil, errs.CanceledErrorf("session %s was reset before the reply arrived", s.id))
		return
	case <-timer.C:
	}

	reply := s.responder.Respond(agent, prompt)
	reply.Role = entities.RoleAgent

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.logger.Debug("Discarding stale reply", zap.String("session_id", s.id))
		pending.resolve(nil, errs.CanceledErrorf("session %s was reset before the reply arrived", s.id))
		return
	}
	appended := s.appendLocked(*reply)
	s.sending = false
	s.cancel = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("Agent replied", zap.String("session_id", s.id), zap.String("message_id", appended.ID))
	pending.resolve(&appended, nil)
	s.notify(events.SessionMessageAppended, snap)
}

// SelectAgent starts a fresh conversation with agent. The log is replaced by
// the agent's welcome message and any pending reply is dropped.
func (s *Session) SelectAgent(agent *entities.Agent) error {
	if agent == nil {
		return errs.ValidationErrorf("agent is required")
	}

	s.mu.Lock()
	s.invalidateLocked()
	s.agent = agent.Clone()
	s.view = s.view.SelectAgent()
	if welcome := s.responder.Welcome(s.agent); welcome != nil {
		welcome.Role = entities.RoleAgent
		s.appendLocked(*welcome)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("Agent selected", zap.String("session_id", s.id), zap.String("agent_id", agent.ID))
	s.notify(events.SessionAgentSelected, snap)
	return nil
}

// Reset returns the session to agent selection and discards its log.
func (s *Session) Reset() {
	s.mu.Lock()
	s.invalidateLocked()
	s.agent = nil
	s.view = s.view.Back()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(events.SessionReset, snap)
}

// Close drops any pending reply without notifying listeners.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
}

func (s *Session) invalidateLocked() {
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.sending = false
	s.messages = nil
	s.seq = 0
	s.latestInfo = nil
	s.updatedAt = time.Now()
}

func (s *Session) appendLocked(msg entities.Message) entities.Message {
	s.seq++
	msg.Seq = s.seq
	msg = msg.Clone()
	s.messages = append(s.messages, msg)
	if msg.Role == entities.RoleAgent && msg.Info != nil {
		info := *msg.Info
		s.latestInfo = &info
	}
	s.updatedAt = time.Now()
	return msg.Clone()
}

func (s *Session) copyMessagesLocked() []entities.Message {
	out := make([]entities.Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = m.Clone()
	}
	return out
}

func (s *Session) snapshotLocked() *entities.Chat {
	chat := &entities.Chat{
		ID:        s.id,
		View:      s.view.String(),
		Messages:  s.copyMessagesLocked(),
		Sending:   s.sending,
		UpdatedAt: s.updatedAt,
	}
	if s.agent != nil {
		chat.AgentID = s.agent.ID
		chat.AgentName = s.agent.Name
	}
	if s.latestInfo != nil {
		info := *s.latestInfo
		chat.LatestInfo = &info
	}
	return chat
}

// FindLatestInfo scans messages from the end for the last agent message that
// carries an info payload.
func FindLatestInfo(messages []entities.Message) *string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == entities.RoleAgent && messages[i].Info != nil {
			info := *messages[i].Info
			return &info
		}
	}
	return nil
}
