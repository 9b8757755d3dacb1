package interfaces

import (
	"context"

	"github.com/drujensen/agenthub/internal/domain/entities"
)

// AnalyticsProvider supplies the usage series shown on the developer console.
type AnalyticsProvider interface {
	PlatformUsage(ctx context.Context) (entities.Series, error)
	PlatformResponseTime(ctx context.Context) (entities.Series, error)
	AgentDailyUsage(ctx context.Context, agentID string) (entities.Series, error)
	AgentResponseTime(ctx context.Context, agentID string) (entities.Series, error)
	Satisfaction(ctx context.Context) ([]entities.Point, error)
}
