package repositories_memory

import (
	"context"
	"slices"
	"sync"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/errs"
	"github.com/drujensen/agenthub/internal/domain/interfaces"

	"github.com/google/uuid"
)

// MemoryAgentRepository keeps agents in insertion order for the lifetime of
// the process. Callers always receive copies.
type MemoryAgentRepository struct {
	mu   sync.RWMutex
	data []*entities.Agent
}

func NewMemoryAgentRepository(seed []*entities.Agent) *MemoryAgentRepository {
	repo := &MemoryAgentRepository{
		data: make([]*entities.Agent, 0, len(seed)),
	}
	for _, a := range seed {
		repo.data = append(repo.data, a.Clone())
	}
	return repo
}

func (r *MemoryAgentRepository) ListAgents(ctx context.Context) ([]*entities.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agentsCopy := make([]*entities.Agent, len(r.data))
	for i, a := range r.data {
		agentsCopy[i] = a.Clone()
	}
	return agentsCopy, nil
}

func (r *MemoryAgentRepository) GetAgent(ctx context.Context, id string) (*entities.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.data[i].Clone(), nil
	}
	return nil, errs.NotFoundErrorf("agent not found: %s", id)
}

func (r *MemoryAgentRepository) CreateAgent(ctx context.Context, agent *entities.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agent.ID == "" {
		agent.ID = uuid.New().String()
	}
	if r.indexOf(agent.ID) >= 0 {
		return errs.DuplicateErrorf("agent already exists: %s", agent.ID)
	}

	r.data = append(r.data, agent.Clone())
	return nil
}

func (r *MemoryAgentRepository) UpdateAgent(ctx context.Context, agent *entities.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(agent.ID); i >= 0 {
		r.data[i] = agent.Clone()
		return nil
	}
	return errs.NotFoundErrorf("agent not found: %s", agent.ID)
}

func (r *MemoryAgentRepository) DeleteAgent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.data = slices.Delete(r.data, i, i+1)
		return nil
	}
	return errs.NotFoundErrorf("agent not found: %s", id)
}

func (r *MemoryAgentRepository) indexOf(id string) int {
	return slices.IndexFunc(r.data, func(a *entities.Agent) bool {
		return a.ID == id
	})
}

var _ interfaces.AgentRepository = (*MemoryAgentRepository)(nil)
