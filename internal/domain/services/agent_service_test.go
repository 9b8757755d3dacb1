package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	repositories_memory "github.com/drujensen/agenthub/internal/impl/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock repository for testing
type mockAgentRepository struct {
	mock.Mock
	agents []*entities.Agent
}

func (m *mockAgentRepository) ListAgents(ctx context.Context) ([]*entities.Agent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entities.Agent), args.Error(1)
}

func (m *mockAgentRepository) GetAgent(ctx context.Context, id string) (*entities.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*entities.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAgentRepository) CreateAgent(ctx context.Context, agent *entities.Agent) error {
	args := m.Called(ctx, agent)
	m.agents = append(m.agents, agent)
	return args.Error(0)
}

func (m *mockAgentRepository) UpdateAgent(ctx context.Context, agent *entities.Agent) error {
	args := m.Called(ctx, agent)
	return args.Error(0)
}

func (m *mockAgentRepository) DeleteAgent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testAgents() []*entities.Agent {
	support := entities.NewAgent("Customer Support Assistant", "support", entities.AgentStatusActive)
	support.Usage = 876
	research := entities.NewAgent("Research Helper", "research", entities.AgentStatusDisabled)
	research.Usage = 210
	marketing := entities.NewAgent("New Marketing Agent", "marketing", entities.AgentStatusPending)
	return []*entities.Agent{support, research, marketing}
}

func TestAgentService_ListAgents(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	expectedAgents := testAgents()

	mockRepo.On("ListAgents", ctx).Return(expectedAgents, nil)

	agents, err := service.ListAgents(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expectedAgents, agents)
	mockRepo.AssertExpectations(t)
}

func TestAgentService_ListChatAgents(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("ListAgents", ctx).Return(testAgents(), nil)

	agents, err := service.ListChatAgents(ctx)

	require.NoError(t, err)
	require.Len(t, agents, 2)
	for _, agent := range agents {
		assert.NotEqual(t, entities.AgentStatusDisabled, agent.Status)
	}
}

func TestAgentService_GetAgent(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	agent := entities.NewAgent("TestAgent", "test", entities.AgentStatusActive)

	t.Run("valid agent", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, "valid-id").Return(agent, nil).Once()

		result, err := service.GetAgent(ctx, "valid-id")

		assert.NoError(t, err)
		assert.Equal(t, agent, result)
	})

	t.Run("empty id", func(t *testing.T) {
		result, err := service.GetAgent(ctx, "")

		assert.Error(t, err)
		assert.IsType(t, &errs.ValidationError{}, err)
		assert.Nil(t, result)
	})
}

func TestAgentService_GetChatAgent(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()

	t.Run("disabled agent", func(t *testing.T) {
		disabled := entities.NewAgent("Research Helper", "research", entities.AgentStatusDisabled)
		mockRepo.On("GetAgent", ctx, disabled.ID).Return(disabled, nil).Once()

		result, err := service.GetChatAgent(ctx, disabled.ID)

		assert.IsType(t, &errs.NotFoundError{}, err)
		assert.Nil(t, result)
	})

	t.Run("unknown agent", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, "missing").Return(nil, errs.NotFoundErrorf("agent not found: missing")).Once()

		_, err := service.GetChatAgent(ctx, "missing")

		assert.IsType(t, &errs.NotFoundError{}, err)
	})
}

func TestAgentService_CreateAgent(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	files := []entities.Attachment{{Name: "agent.py", Type: "text/x-python", Size: 128}}

	t.Run("defaults applied", func(t *testing.T) {
		mockRepo.On("CreateAgent", ctx, mock.AnythingOfType("*entities.Agent")).Return(nil).Once()

		agent, err := service.CreateAgent(ctx, &entities.Agent{Name: "  Helper  "}, files)

		require.NoError(t, err)
		assert.NotEmpty(t, agent.ID)
		assert.Equal(t, "Helper", agent.Name)
		assert.Equal(t, DefaultDescription, agent.Description)
		assert.Equal(t, DefaultVersion, agent.Version)
		assert.Equal(t, entities.AgentStatusPending, agent.Status)
		assert.Zero(t, agent.Usage)
		assert.NotZero(t, agent.CreatedAt)
		assert.NotZero(t, agent.LastUpdated)
		assert.Equal(t, files, agent.Files)
	})

	t.Run("explicit fields kept", func(t *testing.T) {
		mockRepo.On("CreateAgent", ctx, mock.AnythingOfType("*entities.Agent")).Return(nil).Once()

		draft := &entities.Agent{Name: "Helper", Description: "Helps", Version: "2.0.0", Status: entities.AgentStatusActive}
		agent, err := service.CreateAgent(ctx, draft, files)

		require.NoError(t, err)
		assert.Equal(t, "Helps", agent.Description)
		assert.Equal(t, "2.0.0", agent.Version)
		assert.Equal(t, entities.AgentStatusActive, agent.Status)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := service.CreateAgent(ctx, &entities.Agent{Name: " "}, files)
		assert.IsType(t, &errs.ValidationError{}, err)
	})

	t.Run("missing files", func(t *testing.T) {
		_, err := service.CreateAgent(ctx, &entities.Agent{Name: "Helper"}, nil)
		assert.IsType(t, &errs.ValidationError{}, err)
	})

	t.Run("disabled status rejected", func(t *testing.T) {
		_, err := service.CreateAgent(ctx, &entities.Agent{Name: "Helper", Status: entities.AgentStatusDisabled}, files)
		assert.IsType(t, &errs.ValidationError{}, err)
	})

	mockRepo.AssertExpectations(t)
}

func TestAgentService_CreateAgentCanceled(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.CreateAgent(ctx, &entities.Agent{Name: "Helper"}, []entities.Attachment{{Name: "a.go"}})

	assert.IsType(t, &errs.CanceledError{}, err)
	mockRepo.AssertNotCalled(t, "CreateAgent", mock.Anything, mock.Anything)
}

func TestAgentService_UpdateAgent(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	agent := entities.NewAgent("TestAgent", "test", entities.AgentStatusActive)
	existing := *agent
	existing.Usage = 42
	existing.CreatedAt = time.Now().Add(-time.Hour)

	t.Run("valid update", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, agent.ID).Return(&existing, nil).Once()
		mockRepo.On("UpdateAgent", ctx, agent).Return(nil).Once()

		err := service.UpdateAgent(ctx, agent)

		assert.NoError(t, err)
		assert.Equal(t, existing.CreatedAt, agent.CreatedAt)
		assert.Equal(t, 42, agent.Usage)
		assert.True(t, agent.LastUpdated.After(existing.CreatedAt))
	})

	t.Run("missing id", func(t *testing.T) {
		invalidAgent := &entities.Agent{Name: "Test"}
		err := service.UpdateAgent(ctx, invalidAgent)
		assert.Error(t, err)
		assert.IsType(t, &errs.ValidationError{}, err)
	})

	t.Run("missing name", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, agent.ID).Return(&existing, nil).Once()
		err := service.UpdateAgent(ctx, &entities.Agent{ID: agent.ID})
		assert.IsType(t, &errs.ValidationError{}, err)
	})

	t.Run("agent not found", func(t *testing.T) {
		mockRepo.On("GetAgent", ctx, agent.ID).Return(nil, &errs.NotFoundError{}).Once()
		err := service.UpdateAgent(ctx, agent)
		assert.Error(t, err)
		assert.IsType(t, &errs.NotFoundError{}, err)
	})
}

func TestAgentService_DeleteAgent(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()

	t.Run("valid delete", func(t *testing.T) {
		agent := entities.NewAgent("TestAgent", "test", entities.AgentStatusActive)
		mockRepo.On("GetAgent", ctx, agent.ID).Return(agent, nil).Once()
		mockRepo.On("DeleteAgent", ctx, agent.ID).Return(nil).Once()

		err := service.DeleteAgent(ctx, agent.ID)

		assert.NoError(t, err)
	})

	t.Run("empty id", func(t *testing.T) {
		err := service.DeleteAgent(ctx, "")
		assert.Error(t, err)
		assert.IsType(t, &errs.ValidationError{}, err)
	})
}

func TestAgentService_UploadAgentFiles(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	files := []entities.Attachment{
		{Name: "main.py", Size: 100},
		{Name: "requirements.txt", Size: 20},
	}

	t.Run("creates pending agent", func(t *testing.T) {
		mockRepo.On("ListAgents", ctx).Return(testAgents(), nil).Once()
		mockRepo.On("CreateAgent", ctx, mock.AnythingOfType("*entities.Agent")).Return(nil).Once()

		agent, receipt, err := service.UploadAgentFiles(ctx, files)

		require.NoError(t, err)
		assert.Equal(t, "New Agent 4", agent.Name)
		assert.Equal(t, UploadDescription, agent.Description)
		assert.Equal(t, entities.AgentStatusPending, agent.Status)
		assert.Equal(t, agent.ID, receipt.AgentID)
		assert.Equal(t, int64(120), receipt.TotalSize)
		assert.Equal(t, "Successfully uploaded 2 file(s)", receipt.Summary())
	})

	t.Run("no files", func(t *testing.T) {
		_, _, err := service.UploadAgentFiles(ctx, nil)
		assert.IsType(t, &errs.ValidationError{}, err)
	})
}

func TestAgentService_UploadAgentCode(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	agent := entities.NewAgent("TestAgent", "test", entities.AgentStatusActive)
	before := agent.LastUpdated

	// read once to validate, again after the upload delay
	mockRepo.On("GetAgent", ctx, agent.ID).Return(agent, nil).Twice()
	mockRepo.On("UpdateAgent", ctx, agent).Return(nil).Once()

	receipt, err := service.UploadAgentCode(ctx, agent.ID, entities.Attachment{Name: "v2.zip", Size: 2048})

	require.NoError(t, err)
	assert.Equal(t, int64(2048), receipt.TotalSize)
	require.Len(t, agent.Files, 1)
	assert.False(t, agent.LastUpdated.Before(before))

	_, err = service.UploadAgentCode(ctx, agent.ID, entities.Attachment{})
	assert.IsType(t, &errs.ValidationError{}, err)
}

func TestAgentService_UploadAgentCodeKeepsConcurrentUpdate(t *testing.T) {
	ctx := context.Background()
	agent := entities.NewAgent("Old", "test", entities.AgentStatusActive)
	repo := repositories_memory.NewMemoryAgentRepository([]*entities.Agent{agent})
	service := NewAgentService(repo, 50*time.Millisecond, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := service.UploadAgentCode(ctx, agent.ID, entities.Attachment{Name: "v2.zip"})
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, service.UpdateAgent(ctx, &entities.Agent{ID: agent.ID, Name: "Renamed"}))
	require.NoError(t, <-done)

	stored, err := service.GetAgent(ctx, agent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	require.Len(t, stored.Files, 1)
	assert.Equal(t, "v2.zip", stored.Files[0].Name)
}

func TestAgentService_ConcurrentUploadsGetDistinctNames(t *testing.T) {
	ctx := context.Background()
	repo := repositories_memory.NewMemoryAgentRepository(testAgents())
	service := NewAgentService(repo, 20*time.Millisecond, zap.NewNop())

	var wg sync.WaitGroup
	names := make([]string, 2)
	for i := range names {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			agent, _, err := service.UploadAgentFiles(ctx, []entities.Attachment{{Name: "main.py"}})
			if assert.NoError(t, err) {
				names[i] = agent.Name
			}
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []string{"New Agent 4", "New Agent 5"}, names)
}

func TestAgentService_Summary(t *testing.T) {
	mockRepo := new(mockAgentRepository)
	service := NewAgentService(mockRepo, 0, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("ListAgents", ctx).Return(testAgents(), nil)

	summary, err := service.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, entities.AgentSummary{TotalUsage: 1086, ActiveAgents: 1, TotalAgents: 3}, summary)
}
