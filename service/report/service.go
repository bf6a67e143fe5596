package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kgnielsen777/AzureFinopsTools/model"
)

func NewService() *service {
	return &service{}
}

// Write implements service.ReportSink. One row per resource in run order,
// followed by a summary section.
func (s *service) Write(w io.Writer, rows []model.ReportRow, summary model.RunSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		if err := cw.Write(formatRow(row)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Write([]string{})
	cw.Write([]string{"SUMMARY"})
	cw.Write([]string{"Resources", fmt.Sprintf("%d", summary.ResourceCount)})
	for _, action := range orderedActions {
		if count := summary.ActionCounts[action]; count > 0 {
			cw.Write([]string{string(action), fmt.Sprintf("%d", count)})
		}
	}
	cw.Write([]string{"Total Cost", fmt.Sprintf("%.2f %s", summary.TotalCost, summary.Currency)})
	cw.Write([]string{"Potential Savings", fmt.Sprintf("%.2f %s", summary.TotalSavings, summary.Currency)})

	cw.Flush()
	return cw.Error()
}

// WriteFile implements service.ReportSink
func (s *service) WriteFile(path string, rows []model.ReportRow, summary model.RunSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	return s.Write(f, rows, summary)
}

var orderedActions = []model.Action{
	model.ActionScaleDown,
	model.ActionScaleDownUnused,
	model.ActionScaleUp,
	model.ActionUnused,
	model.ActionNoChange,
	model.ActionNoMetrics,
}

func formatRow(row model.ReportRow) []string {
	r := row.Resource
	c := row.Cost
	rec := row.Recommendation

	tierChangeSavings := ""
	if rec.TierChange != "" {
		tierChangeSavings = fmt.Sprintf("%.2f", rec.TierChangeSavings)
	}

	return []string{
		r.Name,
		string(r.Type),
		r.ServerName,
		r.ResourceGroup,
		r.Subscription,
		r.PoolName,
		formatCount(r),
		string(r.Tier),
		fmt.Sprintf("%d", r.Capacity),
		string(r.Unit),
		formatPercent(row.Utilization.AvgPercent),
		formatPercent(row.Utilization.PeakPercent),
		fmt.Sprintf("%.2f", c.Amount),
		c.Currency,
		c.BillingPeriod,
		fmt.Sprintf("%d", rec.RecommendedCapacity),
		string(rec.Action),
		fmt.Sprintf("%.2f", rec.EstimatedCost),
		fmt.Sprintf("%.2f", rec.PotentialSavings),
		rec.TierChange,
		tierChangeSavings,
		r.ID,
	}
}

// formatPercent renders a missing reading as an empty cell, keeping "no
// data" visually distinct from a measured 0.00
func formatPercent(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *value)
}

func formatCount(r model.ResourceDescriptor) string {
	if r.Type != model.ResourcePool {
		return ""
	}
	return fmt.Sprintf("%d", r.DatabaseCount)
}
