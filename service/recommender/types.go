package recommender

import (
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

type service struct{}

// RecommenderService turns a resource's tier, capacity, peak utilization and
// current cost into a right-sizing recommendation. Pure and deterministic.
type RecommenderService interface {
	Recommend(tier model.ServiceTier, currentCapacity int32, peakUtilization *float64, currentCost float64, unit model.CapacityUnitKind) model.Recommendation
}
