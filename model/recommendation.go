package model

// Action classifies what should happen to a resource
type Action string

const (
	ActionNoMetrics       Action = "NoMetrics"
	ActionUnused          Action = "Unused"
	ActionScaleDownUnused Action = "ScaleDown-Unused"
	ActionScaleDown       Action = "ScaleDown"
	ActionScaleUp         Action = "ScaleUp"
	ActionNoChange        Action = "NoChange"
)

// Recommendation is the engine's verdict for one resource. Estimated cost is
// a linear approximation of the current bill, not a quote. The tier-change
// fields are static heuristics applied to chronically idle resources already
// at their tier's minimum capacity; they are not derived from live pricing.
type Recommendation struct {
	RecommendedCapacity int32
	Action              Action
	EstimatedCost       float64
	PotentialSavings    float64
	TierChange          string
	TierChangeSavings   float64
}

// RunSummary aggregates one complete run
type RunSummary struct {
	ResourceCount int
	ActionCounts  map[Action]int
	TotalCost     float64
	TotalSavings  float64
	Currency      string
}
