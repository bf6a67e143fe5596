package response

// ReportRow is one scored resource in the right-sizing report
type ReportRow struct {
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	Server              string   `json:"server"`
	ResourceGroup       string   `json:"resource_group"`
	Subscription        string   `json:"subscription"`
	PoolName            string   `json:"pool_name,omitempty"`
	DatabaseCount       int      `json:"database_count,omitempty"`
	Tier                string   `json:"tier"`
	Capacity            int32    `json:"capacity"`
	Unit                string   `json:"unit"`
	AvgUtilization      *float64 `json:"avg_utilization_percent"`
	PeakUtilization     *float64 `json:"peak_utilization_percent"`
	CostAmount          float64  `json:"cost_amount"`
	Currency            string   `json:"currency"`
	BillingPeriod       string   `json:"billing_period"`
	RecommendedCapacity int32    `json:"recommended_capacity"`
	Action              string   `json:"action"`
	EstimatedCost       float64  `json:"estimated_cost"`
	PotentialSavings    float64  `json:"potential_savings"`
	TierChange          string   `json:"tier_change,omitempty"`
	TierChangeSavings   float64  `json:"tier_change_savings,omitempty"`
	ResourceID          string   `json:"resource_id"`
}

// Summary aggregates a full advisory run
type Summary struct {
	ResourceCount int            `json:"resource_count"`
	ActionCounts  map[string]int `json:"action_counts"`
	TotalCost     float64        `json:"total_cost"`
	TotalSavings  float64        `json:"total_savings"`
	Currency      string         `json:"currency"`
}

// Report is the full advisory result returned by the MCP tool
type Report struct {
	Rows    []ReportRow `json:"rows"`
	Summary Summary     `json:"summary"`
}

// AzureSubscription describes one accessible subscription
type AzureSubscription struct {
	SubscriptionID string `json:"subscription_id"`
	DisplayName    string `json:"display_name"`
	State          string `json:"state"`
}
