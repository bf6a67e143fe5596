package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/kgnielsen777/AzureFinopsTools/model"
	"github.com/kgnielsen777/AzureFinopsTools/service"
	"github.com/kgnielsen777/AzureFinopsTools/service/recommender"
	"github.com/rs/zerolog/log"
)

func NewService(discoveryService service.DiscoveryService, metricsService service.MetricsService, costService service.CostService, rec recommender.RecommenderService, delay time.Duration) *orchestratorService {
	return &orchestratorService{
		discoveryService: discoveryService,
		metricsService:   metricsService,
		costService:      costService,
		recommender:      rec,
		delay:            delay,
	}
}

// ProcessSubscription implements OrchestratorService. The cost cache is built
// once for the whole subscription before any resource is scored; scoring then
// runs sequentially and only reads the cache snapshot. A failed utilization
// fetch degrades that resource to a NoMetrics row instead of aborting.
func (s *orchestratorService) ProcessSubscription(ctx context.Context, rows *[]model.ReportRow) error {
	descriptors, err := s.discoveryService.ListDescriptors(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover SQL resources: %w", err)
	}

	if len(descriptors) == 0 {
		return nil
	}

	cache, unresolved := s.costService.BuildCostCache(ctx, resourceGroupSet(descriptors))
	if unresolved > 0 {
		log.Warn().Int("rows", unresolved).Msg("billing rows could not be matched to a resource")
	}

	for i, descriptor := range descriptors {
		if i > 0 && s.delay > 0 {
			time.Sleep(s.delay)
		}

		sample, err := s.metricsService.GetUtilization(ctx, descriptor.ID, descriptor.Unit)
		if err != nil {
			log.Warn().Err(err).Str("resource", descriptor.Name).Msg("utilization fetch failed, reporting without metrics")
			sample = model.UtilizationSample{}
		}

		cost := cache.Lookup(descriptor.ID)
		recommendation := s.recommender.Recommend(descriptor.Tier, descriptor.Capacity, sample.PeakPercent, cost.Amount, descriptor.Unit)

		*rows = append(*rows, model.ReportRow{
			Resource:       descriptor,
			Utilization:    sample,
			Cost:           cost,
			Recommendation: recommendation,
		})
	}

	return nil
}

// resourceGroupSet collects the distinct resource groups of the discovered
// resources, preserving first-seen order
func resourceGroupSet(descriptors []model.ResourceDescriptor) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, descriptor := range descriptors {
		if descriptor.ResourceGroup == "" || seen[descriptor.ResourceGroup] {
			continue
		}
		seen[descriptor.ResourceGroup] = true
		groups = append(groups, descriptor.ResourceGroup)
	}
	return groups
}

// ApplyScaleUpPolicy is the end-of-run transform over the complete row set.
// When scale-up suggestions are disabled (the default), every ScaleUp row is
// rewritten in place to NoChange with its capacity, cost and savings reset;
// the resource still appears in the report. Returns the number of rows
// converted.
func ApplyScaleUpPolicy(rows []model.ReportRow, includeScaleUp bool) int {
	if includeScaleUp {
		return 0
	}

	converted := 0
	for i := range rows {
		if rows[i].Recommendation.Action != model.ActionScaleUp {
			continue
		}
		rows[i].Recommendation.Action = model.ActionNoChange
		rows[i].Recommendation.RecommendedCapacity = rows[i].Resource.Capacity
		rows[i].Recommendation.EstimatedCost = rows[i].Cost.Amount
		rows[i].Recommendation.PotentialSavings = 0
		converted++
	}
	return converted
}

// Summarize computes the run-level aggregates over the final row set
func Summarize(rows []model.ReportRow) model.RunSummary {
	summary := model.RunSummary{
		ResourceCount: len(rows),
		ActionCounts:  make(map[model.Action]int),
	}

	for _, row := range rows {
		summary.ActionCounts[row.Recommendation.Action]++
		summary.TotalCost += row.Cost.Amount
		if row.Recommendation.PotentialSavings > 0 {
			summary.TotalSavings += row.Recommendation.PotentialSavings
		}
		if summary.Currency == "" && row.Cost.Currency != "" {
			summary.Currency = row.Cost.Currency
		}
	}

	summary.TotalCost = model.Round2(summary.TotalCost)
	summary.TotalSavings = model.Round2(summary.TotalSavings)
	return summary
}
