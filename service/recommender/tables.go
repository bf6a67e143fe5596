package recommender

import (
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// Legal capacity steps per DTU tier, ascending. A recommendation is always
// one of these values and never below the tier minimum.
var dtuCapacities = map[model.ServiceTier][]int32{
	model.TierBasic:    {5},
	model.TierStandard: {10, 20, 50, 100, 200, 400, 800, 1600, 3000},
	model.TierPremium:  {125, 250, 500, 1000, 1750, 4000},
}

// vCore counts are shared across all vCore tiers
var vCoreCapacities = []int32{1, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 24, 32, 40, 80}

type tierChange struct {
	Suggestion   string
	SavingsRatio float64
}

// Approximate savings for moving a chronically idle resource to a cheaper
// tier. Static heuristics, not live pricing.
var dtuTierChanges = map[model.ServiceTier]tierChange{
	model.TierStandard: {Suggestion: "Consider Basic (5 DTU)", SavingsRatio: 0.65},
	model.TierPremium:  {Suggestion: "Consider Standard (100 DTU)", SavingsRatio: 0.80},
}

var vCoreTierChange = tierChange{Suggestion: "Consider Standard DTU tier", SavingsRatio: 0.70}

// A vCore tier change is only suggested when the current bill is material
const vCoreChangeCostThreshold = 100.0

func capacitiesFor(tier model.ServiceTier, unit model.CapacityUnitKind) []int32 {
	if unit == model.UnitVCore {
		return vCoreCapacities
	}
	if seq, ok := dtuCapacities[tier]; ok {
		return seq
	}
	return nil
}

func minimumFor(tier model.ServiceTier, unit model.CapacityUnitKind) int32 {
	seq := capacitiesFor(tier, unit)
	if len(seq) == 0 {
		return 0
	}
	return seq[0]
}
