package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/interfaces"
	"github.com/drujensen/agenthub/internal/domain/session"

	"go.uber.org/zap"
)

// ChatService keeps the live chat sessions. Sessions are independent of each
// other and live only in memory.
type ChatService interface {
	CreateSession(ctx context.Context, agentID string) (*session.Session, error)
	GetSession(ctx context.Context, id string) (*session.Session, error)
	ListSessions(ctx context.Context) []*entities.Chat
	DeleteSession(ctx context.Context, id string) error
	SelectAgent(ctx context.Context, sessionID, agentID string) (*entities.Chat, error)
	SendMessage(ctx context.Context, sessionID, text string, attachments []entities.Attachment) (*session.Pending, error)
	ResetSession(ctx context.Context, id string) (*entities.Chat, error)
	QuickPrompts() []entities.QuickPrompt
	Close()
}

type chatService struct {
	agentService AgentService
	responder    interfaces.Responder
	prompts      []entities.QuickPrompt
	delay        time.Duration
	logger       *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*session.Session
}

func NewChatService(
	agentService AgentService,
	responder interfaces.Responder,
	prompts []entities.QuickPrompt,
	delay time.Duration,
	logger *zap.Logger,
) *chatService {
	return &chatService{
		agentService: agentService,
		responder:    responder,
		prompts:      prompts,
		delay:        delay,
		logger:       logger,
		sessions:     make(map[string]*session.Session),
	}
}

// CreateSession starts a session on the selection view, or directly in
// conversation when agentID is given.
func (s *chatService) CreateSession(ctx context.Context, agentID string) (*session.Session, error) {
	var agent *entities.Agent
	if agentID != "" {
		var err error
		agent, err = s.agentService.GetChatAgent(ctx, agentID)
		if err != nil {
			return nil, err
		}
	}

	sess := session.New(s.responder,
		session.WithDelay(s.delay),
		session.WithLogger(s.logger),
	)
	if agent != nil {
		if err := sess.SelectAgent(agent); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.sessions[sess.ID()] = sess
	s.mu.Unlock()

	s.logger.Info("Session created", zap.String("session_id", sess.ID()))
	return sess, nil
}

func (s *chatService) GetSession(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, errs.ValidationErrorf("session ID is required")
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errs.NotFoundErrorf("session not found: %s", id)
	}

	return sess, nil
}

// ListSessions returns snapshots ordered by most recent activity.
func (s *chatService) ListSessions(ctx context.Context) []*entities.Chat {
	s.mu.RLock()
	chats := make([]*entities.Chat, 0, len(s.sessions))
	for _, sess := range s.sessions {
		chats = append(chats, sess.Snapshot())
	}
	s.mu.RUnlock()

	sort.Slice(chats, func(i, j int) bool {
		return chats[i].UpdatedAt.After(chats[j].UpdatedAt)
	})
	return chats
}

func (s *chatService) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return errs.NotFoundErrorf("session not found: %s", id)
	}

	sess.Close()
	s.logger.Info("Session deleted", zap.String("session_id", id))
	return nil
}

func (s *chatService) SelectAgent(ctx context.Context, sessionID, agentID string) (*entities.Chat, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	agent, err := s.agentService.GetChatAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if err := sess.SelectAgent(agent); err != nil {
		return nil, err
	}

	return sess.Snapshot(), nil
}

func (s *chatService) SendMessage(ctx context.Context, sessionID, text string, attachments []entities.Attachment) (*session.Pending, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return sess.Submit(text, attachments)
}

func (s *chatService) ResetSession(ctx context.Context, id string) (*entities.Chat, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Reset()
	return sess.Snapshot(), nil
}

func (s *chatService) QuickPrompts() []entities.QuickPrompt {
	return append([]entities.QuickPrompt(nil), s.prompts...)
}

// Close drops every session and any reply still in flight.
func (s *chatService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.Close()
		delete(s.sessions, id)
	}
}

// verify interface implementation
var _ ChatService = &chatService{}
