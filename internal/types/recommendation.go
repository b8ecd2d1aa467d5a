package types

// Priority levels for skill recommendations.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Match score bounds. A score never leaves this interval; the floor
// reflects generic eligibility rather than a hard rejection.
const (
	MinMatchScore = 30
	MaxMatchScore = 100
)

// Recommendation represents a single skill-gap recommendation. Skill keeps
// the original casing from the job-skill source that produced it.
type Recommendation struct {
	Skill        string `json:"skill"`
	Priority     string `json:"priority"`
	ResourceHint string `json:"resources"`
}
