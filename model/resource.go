package model

// ResourceType distinguishes elastic pools from standalone databases
type ResourceType string

const (
	ResourcePool       ResourceType = "Pool"
	ResourceStandalone ResourceType = "Standalone"
)

// ResourceDescriptor identifies one scored resource: an elastic pool or a
// database that is not a member of a pool. The ID is the full ARM resource ID
// and is matched case-insensitively against billing data.
type ResourceDescriptor struct {
	ID            string
	Name          string
	ServerName    string
	ResourceGroup string
	Subscription  string
	Type          ResourceType
	Tier          ServiceTier
	Capacity      int32
	Unit          CapacityUnitKind
	PoolName      string
	DatabaseCount int
}

// UtilizationSample holds the 30-day utilization figures for one resource.
// Nil means the provider returned no data, which is not the same as a
// measured zero: absent data produces a NoMetrics recommendation while a
// true zero marks the resource as unused.
type UtilizationSample struct {
	AvgPercent  *float64
	PeakPercent *float64
}

// ReportRow is the full join of everything known about one resource at the
// end of a run.
type ReportRow struct {
	Resource       ResourceDescriptor
	Utilization    UtilizationSample
	Cost           CostRecord
	Recommendation Recommendation
}
