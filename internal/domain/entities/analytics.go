package entities

type Point struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Points []Point `json:"points" yaml:"points"`
}

// Last returns the final point of the series, or a zero point when empty.
func (s Series) Last() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[len(s.Points)-1]
}

type AgentSummary struct {
	TotalUsage   int `json:"total_usage"`
	ActiveAgents int `json:"active_agents"`
	TotalAgents  int `json:"total_agents"`
}

// ActivePercent is the share of active agents, 0 when there are none.
func (s AgentSummary) ActivePercent() float64 {
	if s.TotalAgents == 0 {
		return 0
	}
	return float64(s.ActiveAgents) / float64(s.TotalAgents) * 100
}

type Analytics struct {
	AgentID      string  `json:"agent_id,omitempty"`
	Usage        int     `json:"usage"`
	UsageSeries  Series  `json:"usage_series"`
	ResponseTime Series  `json:"response_time"`
	Satisfaction []Point `json:"satisfaction"`
}
