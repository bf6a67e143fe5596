package utils

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// DrawReportTable renders one line per scored resource plus a summary block
func DrawReportTable(rows []model.ReportRow, summary model.RunSummary) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🗄  SQL RIGHT-SIZING REPORT"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.Table{}
	tw.AppendHeader(table.Row{
		"Resource",
		"Type",
		"Tier",
		"Capacity",
		"Peak %",
		"Cost",
		"Action",
		"Recommended",
		"Est. Cost",
		"Savings",
	})

	for _, row := range rows {
		tw.AppendRow(populateReportRow(row))
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
		{Number: 10, Align: text.AlignRight},
	})
	fmt.Println(tw.Render())

	drawSummary(summary)
}

func populateReportRow(row model.ReportRow) table.Row {
	color := actionColor(row.Recommendation.Action)

	peak := ""
	if row.Utilization.PeakPercent != nil {
		peak = fmt.Sprintf("%.2f", *row.Utilization.PeakPercent)
	}

	name := row.Resource.Name
	if row.Resource.Type == model.ResourcePool {
		name = fmt.Sprintf("%s (%d dbs)", name, row.Resource.DatabaseCount)
	}

	r := table.Row{
		name,
		string(row.Resource.Type),
		string(row.Resource.Tier),
		fmt.Sprintf("%d %s", row.Resource.Capacity, row.Resource.Unit),
		peak,
		fmt.Sprintf("%.2f %s", row.Cost.Amount, row.Cost.Currency),
		color.Sprint(string(row.Recommendation.Action)),
		fmt.Sprintf("%d %s", row.Recommendation.RecommendedCapacity, row.Resource.Unit),
		fmt.Sprintf("%.2f", row.Recommendation.EstimatedCost),
		color.Sprintf("%.2f", row.Recommendation.PotentialSavings),
	}

	return r
}

func actionColor(action model.Action) text.Color {
	switch action {
	case model.ActionScaleDown, model.ActionScaleDownUnused:
		return text.FgGreen
	case model.ActionScaleUp:
		return text.FgRed
	case model.ActionUnused, model.ActionNoMetrics:
		return text.FgYellow
	default:
		return text.FgWhite
	}
}

func drawSummary(summary model.RunSummary) {
	fmt.Printf(" Resources analyzed: %s\n", text.FgBlue.Sprintf("%d", summary.ResourceCount))
	for action, count := range summary.ActionCounts {
		fmt.Printf("   %s: %d\n", actionColor(action).Sprint(string(action)), count)
	}
	fmt.Printf(" Total cost (last month): %s\n", text.FgHiYellow.Sprintf("%.2f %s", summary.TotalCost, summary.Currency))
	fmt.Printf(" Potential savings: %s\n", text.FgHiGreen.Sprintf("%.2f %s", summary.TotalSavings, summary.Currency))

	// Tier-change note: the savings ratios are static heuristics, not quotes
	fmt.Println(text.Faint.Sprint(" Tier-change savings are heuristic estimates, not derived from live pricing."))
}
