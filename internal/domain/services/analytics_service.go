package services

import (
	"context"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/interfaces"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	PlatformAnalytics(ctx context.Context) (*entities.Analytics, error)
	AgentAnalytics(ctx context.Context, agentID string) (*entities.Analytics, error)
}

type analyticsService struct {
	agentRepo interfaces.AgentRepository
	provider  interfaces.AnalyticsProvider
	logger    *zap.Logger
}

func NewAnalyticsService(agentRepo interfaces.AgentRepository, provider interfaces.AnalyticsProvider, logger *zap.Logger) *analyticsService {
	return &analyticsService{
		agentRepo: agentRepo,
		provider:  provider,
		logger:    logger,
	}
}

// PlatformAnalytics reports usage across every agent in the catalog.
func (s *analyticsService) PlatformAnalytics(ctx context.Context) (*entities.Analytics, error) {
	agents, err := s.agentRepo.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	usage, err := s.provider.PlatformUsage(ctx)
	if err != nil {
		return nil, err
	}
	responseTime, err := s.provider.PlatformResponseTime(ctx)
	if err != nil {
		return nil, err
	}
	satisfaction, err := s.provider.Satisfaction(ctx)
	if err != nil {
		return nil, err
	}

	analytics := &entities.Analytics{
		UsageSeries:  usage,
		ResponseTime: responseTime,
		Satisfaction: satisfaction,
	}
	for _, agent := range agents {
		analytics.Usage += agent.Usage
	}

	return analytics, nil
}

func (s *analyticsService) AgentAnalytics(ctx context.Context, agentID string) (*entities.Analytics, error) {
	if agentID == "" {
		return nil, errs.ValidationErrorf("agent ID is required")
	}

	agent, err := s.agentRepo.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	usage, err := s.provider.AgentDailyUsage(ctx, agent.ID)
	if err != nil {
		return nil, err
	}
	responseTime, err := s.provider.AgentResponseTime(ctx, agent.ID)
	if err != nil {
		return nil, err
	}
	satisfaction, err := s.provider.Satisfaction(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Agent analytics loaded", zap.String("agent_id", agent.ID))

	return &entities.Analytics{
		AgentID:      agent.ID,
		Usage:        agent.Usage,
		UsageSeries:  usage,
		ResponseTime: responseTime,
		Satisfaction: satisfaction,
	}, nil
}

// verify interface implementation
var _ AnalyticsService = &analyticsService{}
