package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/drujensen/agenthub/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Contains(t, c.Welcome, "{agent}")
	assert.Contains(t, c.Info, "# Response Details")
	assert.Len(t, c.QuickPrompts, 2)
	require.Len(t, c.Agents, 5)

	support := c.Agents[0]
	assert.Equal(t, "Customer Support Assistant", support.Name)
	assert.Equal(t, 876, support.Usage)
	assert.Equal(t, entities.AgentStatusActive, support.Status)
	assert.Equal(t, 2023, support.CreatedAt.Year())

	var disabled int
	for _, a := range c.Agents {
		if a.Status == entities.AgentStatusDisabled {
			disabled++
		}
	}
	assert.Equal(t, 1, disabled)
}

func TestDefault_Analytics(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	ctx := context.Background()

	usage, err := c.PlatformUsage(ctx)
	require.NoError(t, err)
	assert.Len(t, usage.Points, 7)
	assert.Equal(t, entities.Point{Label: "Jul", Value: 1200}, usage.Last())

	rt, err := c.PlatformResponseTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.68, rt.Last().Value)

	daily, err := c.AgentDailyUsage(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", daily.Points[0].Label)

	sat, err := c.Satisfaction(ctx)
	require.NoError(t, err)
	var total float64
	for _, p := range sat {
		total += p.Value
	}
	assert.Equal(t, 100.0, total)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	seed := c.AgentSeed()
	seed[0].Name = "changed"
	assert.Equal(t, "Customer Support Assistant", c.Agents[0].Name)

	usage, _ := c.PlatformUsage(context.Background())
	usage.Points[0].Value = -1
	again, _ := c.PlatformUsage(context.Background())
	assert.Equal(t, 400.0, again.Points[0].Value)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing id":     "agents:\n  - name: A\n    status: active\n",
		"duplicate id":   "agents:\n  - {id: '1', name: A, status: active}\n  - {id: '1', name: B, status: active}\n",
		"missing name":   "agents:\n  - {id: '1', status: active}\n",
		"unknown status": "agents:\n  - {id: '1', name: A, status: archived}\n",
		"bad yaml":       "agents: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	doc := "welcome: hi\nagents:\n  - {id: a, name: Alpha, status: pending}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", c.Welcome)
	require.Len(t, c.Agents, 1)
	assert.Equal(t, entities.AgentStatusPending, c.Agents[0].Status)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	def, err := Load("")
	require.NoError(t, err)
	assert.Len(t, def.Agents, 5)
}
