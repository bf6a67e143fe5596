package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var chartBorderStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

type groupSavings struct {
	group  string
	amount float64
}

// DrawSavingsChart renders potential savings aggregated by resource group.
// Nothing is drawn when the run found no savings.
func DrawSavingsChart(rows []model.ReportRow) {
	savings := savingsByGroup(rows)
	if len(savings) == 0 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💰 POTENTIAL SAVINGS BY RESOURCE GROUP"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	bc := barchart.New(100, 15)
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	for i, entry := range savings {
		color := palette[len(palette)-1]
		if i < len(palette) {
			color = palette[i]
		}

		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f", entry.group, entry.amount),
			Values: []barchart.BarValue{
				{
					Value: entry.amount,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, chartBorderStyle.Render(bc.View())))
}

func savingsByGroup(rows []model.ReportRow) []groupSavings {
	totals := make(map[string]float64)
	for _, row := range rows {
		if row.Recommendation.PotentialSavings > 0 {
			totals[row.Resource.ResourceGroup] += row.Recommendation.PotentialSavings
		}
	}

	result := make([]groupSavings, 0, len(totals))
	for group, amount := range totals {
		result = append(result, groupSavings{group: group, amount: model.Round2(amount)})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].amount > result[j].amount
	})

	return result
}
