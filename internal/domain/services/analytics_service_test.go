package services

import (
	"context"
	"testing"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAnalyticsProvider struct {
	mock.Mock
}

func (m *mockAnalyticsProvider) PlatformUsage(ctx context.Context) (entities.Series, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.Series), args.Error(1)
}

func (m *mockAnalyticsProvider) PlatformResponseTime(ctx context.Context) (entities.Series, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.Series), args.Error(1)
}

func (m *mockAnalyticsProvider) AgentDailyUsage(ctx context.Context, agentID string) (entities.Series, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).(entities.Series), args.Error(1)
}

func (m *mockAnalyticsProvider) AgentResponseTime(ctx context.Context, agentID string) (entities.Series, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).(entities.Series), args.Error(1)
}

func (m *mockAnalyticsProvider) Satisfaction(ctx context.Context) ([]entities.Point, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Point), args.Error(1)
}

var (
	usageSeries = entities.Series{Name: "usage", Points: []entities.Point{{Label: "Jan", Value: 400}, {Label: "Feb", Value: 600}}}
	timeSeries  = entities.Series{Name: "response_time", Unit: "s", Points: []entities.Point{{Label: "Jan", Value: 1.2}}}
	split       = []entities.Point{{Label: "Satisfied", Value: 68}, {Label: "Neutral", Value: 22}, {Label: "Unsatisfied", Value: 10}}
)

func TestAnalyticsService_PlatformAnalytics(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	provider := new(mockAnalyticsProvider)
	service := NewAnalyticsService(mockRepo, provider, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("ListAgents", ctx).Return(testAgents(), nil)
	provider.On("PlatformUsage", ctx).Return(usageSeries, nil)
	provider.On("PlatformResponseTime", ctx).Return(timeSeries, nil)
	provider.On("Satisfaction", ctx).Return(split, nil)

	analytics, err := service.PlatformAnalytics(ctx)

	require.NoError(t, err)
	assert.Empty(t, analytics.AgentID)
	assert.Equal(t, 1086, analytics.Usage)
	assert.Equal(t, usageSeries, analytics.UsageSeries)
	assert.Equal(t, timeSeries, analytics.ResponseTime)
	assert.Equal(t, split, analytics.Satisfaction)
	provider.AssertExpectations(t)
}

func TestAnalyticsService_AgentAnalytics(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	provider := new(mockAnalyticsProvider)
	service := NewAnalyticsService(mockRepo, provider, zap.NewNop())

	ctx := context.Background()
	agent := testAgents()[0]

	t.Run("known agent", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, agent.ID).Return(agent, nil).Once()
		provider.On("AgentDailyUsage", ctx, agent.ID).Return(usageSeries, nil).Once()
		provider.On("AgentResponseTime", ctx, agent.ID).Return(timeSeries, nil).Once()
		provider.On("Satisfaction", ctx).Return(split, nil).Once()

		analytics, err := service.AgentAnalytics(ctx, agent.ID)

		require.NoError(t, err)
		assert.Equal(t, agent.ID, analytics.AgentID)
		assert.Equal(t, agent.Usage, analytics.Usage)
	})

	t.Run("unknown agent", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, "missing").Return(nil, errs.NotFoundErrorf("agent not found: missing")).Once()

		_, err := service.AgentAnalytics(ctx, "missing")

		assert.IsType(t, &errs.NotFoundError{}, err)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := service.AgentAnalytics(ctx, "")
		assert.IsType(t, &errs.ValidationError{}, err)
	})
}
