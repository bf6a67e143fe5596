package recommender

import (
	"math"

	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// targetUtilization is the sizing goal: recommend the smallest capacity that
// keeps peak utilization at or below 80%, leaving 20% headroom for bursts.
const targetUtilization = 80.0

// lowUtilization is the ceiling below which a resource at its tier minimum is
// considered a tier-change candidate
const lowUtilization = 20.0

func NewService() *service {
	return &service{}
}

// Recommend implements RecommenderService
func (s *service) Recommend(tier model.ServiceTier, currentCapacity int32, peakUtilization *float64, currentCost float64, unit model.CapacityUnitKind) model.Recommendation {
	if peakUtilization == nil {
		return model.Recommendation{
			RecommendedCapacity: currentCapacity,
			Action:              model.ActionNoMetrics,
			EstimatedCost:       currentCost,
		}
	}

	peak := *peakUtilization

	if peak == 0 {
		recommended := minimumFor(tier, unit)
		estimated := scaleCost(currentCost, recommended, currentCapacity)

		action := model.ActionUnused
		if recommended < currentCapacity {
			action = model.ActionScaleDownUnused
		}

		return model.Recommendation{
			RecommendedCapacity: recommended,
			Action:              action,
			EstimatedCost:       estimated,
			PotentialSavings:    model.Round2(currentCost - estimated),
		}
	}

	needed := int32(math.Ceil(float64(currentCapacity) * peak / targetUtilization))
	recommended := selectCapacity(tier, unit, needed)

	// Never propose a scale-up for a resource that is not over target: the
	// legal-step rounding may land above current capacity even though the
	// resource has headroom, so hold steady instead.
	if peak < targetUtilization && recommended > currentCapacity {
		recommended = currentCapacity
	}

	action := model.ActionNoChange
	switch {
	case recommended < currentCapacity:
		action = model.ActionScaleDown
	case recommended > currentCapacity:
		action = model.ActionScaleUp
	}

	estimated := scaleCost(currentCost, recommended, currentCapacity)

	rec := model.Recommendation{
		RecommendedCapacity: recommended,
		Action:              action,
		EstimatedCost:       estimated,
		PotentialSavings:    model.Round2(currentCost - estimated),
	}

	if action == model.ActionNoChange && peak < lowUtilization {
		rec.TierChange, rec.TierChangeSavings = tierChangeFor(tier, unit, currentCapacity, currentCost)
	}

	return rec
}

// selectCapacity picks the smallest legal capacity >= needed, or the tier's
// maximum when the need exceeds the legal range.
func selectCapacity(tier model.ServiceTier, unit model.CapacityUnitKind, needed int32) int32 {
	seq := capacitiesFor(tier, unit)
	if len(seq) == 0 {
		return needed
	}
	for _, capacity := range seq {
		if capacity >= needed {
			return capacity
		}
	}
	return seq[len(seq)-1]
}

// scaleCost estimates the cost at a new capacity by linear scaling. A zero
// current capacity would divide by zero; fall back to the unscaled cost.
func scaleCost(currentCost float64, recommended, current int32) float64 {
	if current == 0 {
		return model.Round2(currentCost)
	}
	return model.Round2(currentCost * float64(recommended) / float64(current))
}

// tierChangeFor proposes a cheaper tier for a resource already sitting at its
// tier's minimum capacity. Savings are fixed ratios of the current bill.
func tierChangeFor(tier model.ServiceTier, unit model.CapacityUnitKind, currentCapacity int32, currentCost float64) (string, float64) {
	if currentCapacity != minimumFor(tier, unit) {
		return "", 0
	}

	if unit == model.UnitVCore {
		if currentCost > vCoreChangeCostThreshold {
			return vCoreTierChange.Suggestion, model.Round2(currentCost * vCoreTierChange.SavingsRatio)
		}
		return "", 0
	}

	change, ok := dtuTierChanges[tier]
	if !ok {
		return "", 0
	}
	return change.Suggestion, model.Round2(currentCost * change.SavingsRatio)
}
