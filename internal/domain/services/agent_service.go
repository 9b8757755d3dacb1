package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/events"
	"github.com/drujensen/agenthub/internal/domain/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultDescription = "No description provided"
	DefaultVersion     = "1.0.0"
	UploadDescription  = "Recently uploaded agent"
)

type AgentService interface {
	ListAgents(ctx context.Context) ([]*entities.Agent, error)
	ListChatAgents(ctx context.Context) ([]*entities.Agent, error)
	GetAgent(ctx context.Context, id string) (*entities.Agent, error)
	GetChatAgent(ctx context.Context, id string) (*entities.Agent, error)
	CreateAgent(ctx context.Context, draft *entities.Agent, files []entities.Attachment) (*entities.Agent, error)
	UpdateAgent(ctx context.Context, agent *entities.Agent) error
	DeleteAgent(ctx context.Context, id string) error
	UploadAgentFiles(ctx context.Context, files []entities.Attachment) (*entities.Agent, *entities.UploadReceipt, error)
	UploadAgentCode(ctx context.Context, id string, file entities.Attachment) (*entities.UploadReceipt, error)
	Summary(ctx context.Context) (entities.AgentSummary, error)
}

type agentService struct {
	agentRepo   interfaces.AgentRepository
	uploadDelay time.Duration
	logger      *zap.Logger

	// mu serializes read-modify-write sequences against the repository.
	mu sync.Mutex
}

func NewAgentService(agentRepo interfaces.AgentRepository, uploadDelay time.Duration, logger *zap.Logger) *agentService {
	return &agentService{
		agentRepo:   agentRepo,
		uploadDelay: uploadDelay,
		logger:      logger,
	}
}

func (s *agentService) ListAgents(ctx context.Context) ([]*entities.Agent, error) {
	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	return agents, nil
}

// ListChatAgents returns the agents end users may talk to.
func (s *agentService) ListChatAgents(ctx context.Context) ([]*entities.Agent, error) {
	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	selectable := make([]*entities.Agent, 0, len(agents))
	for _, agent := range agents {
		if agent.Selectable() {
			selectable = append(selectable, agent)
		}
	}

	return selectable, nil
}

func (s *agentService) GetAgent(ctx context.Context, id string) (*entities.Agent, error) {
	if id == "" {
		return nil, errs.ValidationErrorf("agent ID is required")
	}

	agent, err := s.agentRepo.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	return agent, nil
}

func (s *agentService) GetChatAgent(ctx context.Context, id string) (*entities.Agent, error) {
	agent, err := s.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !agent.Selectable() {
		return nil, errs.NotFoundErrorf("agent not available for chat: %s", id)
	}

	return agent, nil
}

func (s *agentService) CreateAgent(ctx context.Context, draft *entities.Agent, files []entities.Attachment) (*entities.Agent, error) {
	if draft == nil || strings.TrimSpace(draft.Name) == "" {
		return nil, errs.ValidationErrorf("agent name is required")
	}
	if len(files) == 0 {
		return nil, errs.ValidationErrorf("at least one agent file is required")
	}

	status := draft.Status
	if status == "" {
		status = entities.AgentStatusPending
	}
	if !creatable(status) {
		return nil, errs.ValidationErrorf("invalid agent status: %s", status)
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	agent := entities.NewAgent(strings.TrimSpace(draft.Name), draft.Description, status)
	if strings.TrimSpace(agent.Description) == "" {
		agent.Description = DefaultDescription
	}
	agent.Version = draft.Version
	if agent.Version == "" {
		agent.Version = DefaultVersion
	}
	agent.Category = draft.Category
	agent.Author = draft.Author
	agent.Files = entities.CopyAttachments(files)

	if err := s.agentRepo.CreateAgent(ctx, agent); err != nil {
		return nil, err
	}

	s.logger.Info("Agent created", zap.String("agent_id", agent.ID), zap.String("name", agent.Name))
	events.PublishAgentEvent(events.AgentCreated, agent.Clone())

	return agent, nil
}

func (s *agentService) UpdateAgent(ctx context.Context, agent *entities.Agent) error {
	if agent == nil || agent.ID == "" {
		return errs.ValidationErrorf("agent ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.agentRepo.GetAgent(ctx, agent.ID)
	if err != nil {
		return err
	}

	if strings.TrimSpace(agent.Name) == "" {
		return errs.ValidationErrorf("agent name is required")
	}
	if agent.Status == "" {
		agent.Status = existing.Status
	}
	if !agent.Status.Valid() {
		return errs.ValidationErrorf("invalid agent status: %s", agent.Status)
	}
	if agent.Files == nil {
		agent.Files = existing.Files
	}

	agent.Usage = existing.Usage
	agent.CreatedAt = existing.CreatedAt
	agent.LastUpdated = time.Now()

	if err := s.agentRepo.UpdateAgent(ctx, agent); err != nil {
		return err
	}

	events.PublishAgentEvent(events.AgentUpdated, agent.Clone())
	return nil
}

func (s *agentService) DeleteAgent(ctx context.Context, id string) error {
	if id == "" {
		return errs.ValidationErrorf("agent ID is required")
	}

	existing, err := s.agentRepo.GetAgent(ctx, id)
	if err != nil {
		return err
	}

	if err := s.agentRepo.DeleteAgent(ctx, id); err != nil {
		return err
	}

	events.PublishAgentEvent(events.AgentDeleted, existing)
	return nil
}

// UploadAgentFiles registers a pending agent for a bulk upload.
func (s *agentService) UploadAgentFiles(ctx context.Context, files []entities.Attachment) (*entities.Agent, *entities.UploadReceipt, error) {
	if len(files) == 0 {
		return nil, nil, errs.ValidationErrorf("at least one file is required")
	}

	if err := s.wait(ctx); err != nil {
		return nil, nil, err
	}

	agent, err := s.createUploadedAgent(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	receipt := entities.NewUploadReceipt(agent.ID, files)
	s.logger.Info("Agent files uploaded",
		zap.String("agent_id", agent.ID),
		zap.Int("files", len(files)),
		zap.Int64("bytes", receipt.TotalSize))
	events.PublishAgentEvent(events.AgentCreated, agent.Clone())

	return agent, receipt, nil
}

func (s *agentService) UploadAgentCode(ctx context.Context, id string, file entities.Attachment) (*entities.UploadReceipt, error) {
	if id == "" {
		return nil, errs.ValidationErrorf("agent ID is required")
	}
	if file.Name == "" {
		return nil, errs.ValidationErrorf("a code file is required")
	}

	if _, err := s.agentRepo.GetAgent(ctx, id); err != nil {
		return nil, err
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	agent, err := s.appendAgentFile(ctx, id, file)
	if err != nil {
		return nil, err
	}

	events.PublishAgentEvent(events.AgentUpdated, agent.Clone())
	return entities.NewUploadReceipt(agent.ID, []entities.Attachment{file}), nil
}

// createUploadedAgent names and stores the agent in one step so concurrent
// uploads never share a number.
func (s *agentService) createUploadedAgent(ctx context.Context, files []entities.Attachment) (*entities.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	agent := entities.NewAgent(fmt.Sprintf("New Agent %d", len(agents)+1), UploadDescription, entities.AgentStatusPending)
	agent.Version = DefaultVersion
	agent.Files = entities.CopyAttachments(files)

	if err := s.agentRepo.CreateAgent(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// appendAgentFile re-reads the agent after the upload delay so edits made
// meanwhile are kept.
func (s *agentService) appendAgentFile(ctx context.Context, id string, file entities.Attachment) (*entities.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agent, err := s.agentRepo.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	agent.Files = append(agent.Files, file)
	agent.LastUpdated = time.Now()
	if err := s.agentRepo.UpdateAgent(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *agentService) Summary(ctx context.Context) (entities.AgentSummary, error) {
	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		return entities.AgentSummary{}, err
	}

	summary := entities.AgentSummary{TotalAgents: len(agents)}
	for _, agent := range agents {
		summary.TotalUsage += agent.Usage
		if agent.IsActive() {
			summary.ActiveAgents++
		}
	}

	return summary, nil
}

// wait simulates upload processing time.
func (s *agentService) wait(ctx context.Context) error {
	if s.uploadDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.uploadDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errs.CanceledErrorf("upload canceled: %v", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func creatable(status entities.AgentStatus) bool {
	switch status {
	case entities.AgentStatusActive, entities.AgentStatusInactive, entities.AgentStatusPending:
		return true
	}
	return false
}

// verify interface implementation
var _ AgentService = &agentService{}
