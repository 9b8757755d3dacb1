// Package fixtures loads the demo data set: the agent catalog, analytics
// series and the canned chat texts.
package fixtures

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/drujensen/agenthub/internal/domain/entities"
	"github.com/drujensen/agenthub/internal/domain/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var embedded []byte

type AnalyticsFixtures struct {
	PlatformUsage        entities.Series  `yaml:"platform_usage"`
	PlatformResponseTime entities.Series  `yaml:"platform_response_time"`
	AgentDailyUsage      entities.Series  `yaml:"agent_daily_usage"`
	AgentResponseTime    entities.Series  `yaml:"agent_response_time"`
	Satisfaction         []entities.Point `yaml:"satisfaction"`
}

type Catalog struct {
	Welcome      string                 `yaml:"welcome"`
	Info         string                 `yaml:"info"`
	QuickPrompts []entities.QuickPrompt `yaml:"quick_prompts"`
	Agents       []*entities.Agent      `yaml:"agents"`
	Analytics    AnalyticsFixtures      `yaml:"analytics"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads a catalog from path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Agents))
	for i, a := range c.Agents {
		if a == nil || a.ID == "" {
			return fmt.Errorf("fixture agent %d has no id", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate fixture agent id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Name == "" {
			return fmt.Errorf("fixture agent %q has no name", a.ID)
		}
		if !a.Status.Valid() {
			return fmt.Errorf("fixture agent %q has unknown status %q", a.ID, a.Status)
		}
	}
	return nil
}

// AgentSeed returns copies of the fixture agents for seeding a repository.
func (c *Catalog) AgentSeed() []*entities.Agent {
	out := make([]*entities.Agent, len(c.Agents))
	for i, a := range c.Agents {
		out[i] = a.Clone()
	}
	return out
}

func (c *Catalog) PlatformUsage(ctx context.Context) (entities.Series, error) {
	return copySeries(c.Analytics.PlatformUsage), nil
}

func (c *Catalog) PlatformResponseTime(ctx context.Context) (entities.Series, error) {
	return copySeries(c.Analytics.PlatformResponseTime), nil
}

// AgentDailyUsage serves the same demo series for every agent.
func (c *Catalog) AgentDailyUsage(ctx context.Context, agentID string) (entities.Series, error) {
	return copySeries(c.Analytics.AgentDailyUsage), nil
}

func (c *Catalog) AgentResponseTime(ctx context.Context, agentID string) (entities.Series, error) {
	return copySeries(c.Analytics.AgentResponseTime), nil
}

func (c *Catalog) Satisfaction(ctx context.Context) ([]entities.Point, error) {
	return append([]entities.Point(nil), c.Analytics.Satisfaction...), nil
}

func copySeries(s entities.Series) entities.Series {
	s.Points = append([]entities.Point(nil), s.Points...)
	return s
}

var _ interfaces.AnalyticsProvider = &Catalog{}
