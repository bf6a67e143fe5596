package report

type service struct{}

// Exported so callers can size readers/writers against the artifact layout
var Header = []string{
	"ResourceName",
	"Type",
	"Server",
	"ResourceGroup",
	"Subscription",
	"PoolName",
	"DatabaseCount",
	"Tier",
	"Capacity",
	"Unit",
	"AvgUtilizationPercent",
	"PeakUtilizationPercent",
	"CostAmount",
	"Currency",
	"BillingPeriod",
	"RecommendedCapacity",
	"Action",
	"EstimatedCost",
	"PotentialSavings",
	"TierChange",
	"TierChangeSavings",
	"ResourceId",
}
