package response

import (
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// ConvertReport converts the run's rows and summary to the MCP response shape
func ConvertReport(rows []model.ReportRow, summary model.RunSummary) *Report {
	report := &Report{
		Rows:    make([]ReportRow, 0, len(rows)),
		Summary: convertSummary(summary),
	}

	for _, row := range rows {
		report.Rows = append(report.Rows, convertRow(row))
	}

	return report
}

func convertRow(row model.ReportRow) ReportRow {
	return ReportRow{
		Name:                row.Resource.Name,
		Type:                string(row.Resource.Type),
		Server:              row.Resource.ServerName,
		ResourceGroup:       row.Resource.ResourceGroup,
		Subscription:        row.Resource.Subscription,
		PoolName:            row.Resource.PoolName,
		DatabaseCount:       row.Resource.DatabaseCount,
		Tier:                string(row.Resource.Tier),
		Capacity:            row.Resource.Capacity,
		Unit:                string(row.Resource.Unit),
		AvgUtilization:      row.Utilization.AvgPercent,
		PeakUtilization:     row.Utilization.PeakPercent,
		CostAmount:          row.Cost.Amount,
		Currency:            row.Cost.Currency,
		BillingPeriod:       row.Cost.BillingPeriod,
		RecommendedCapacity: row.Recommendation.RecommendedCapacity,
		Action:              string(row.Recommendation.Action),
		EstimatedCost:       row.Recommendation.EstimatedCost,
		PotentialSavings:    row.Recommendation.PotentialSavings,
		TierChange:          row.Recommendation.TierChange,
		TierChangeSavings:   row.Recommendation.TierChangeSavings,
		ResourceID:          row.Resource.ID,
	}
}

func convertSummary(summary model.RunSummary) Summary {
	counts := make(map[string]int, len(summary.ActionCounts))
	for action, count := range summary.ActionCounts {
		counts[string(action)] = count
	}

	return Summary{
		ResourceCount: summary.ResourceCount,
		ActionCounts:  counts,
		TotalCost:     summary.TotalCost,
		TotalSavings:  summary.TotalSavings,
		Currency:      summary.Currency,
	}
}
