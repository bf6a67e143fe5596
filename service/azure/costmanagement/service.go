package azurecostmanagement

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/kgnielsen777/AzureFinopsTools/model"
	"github.com/rs/zerolog/log"
)

const (
	managementEndpoint = "https://management.azure.com"
	apiVersion         = "2023-11-01"

	// Safety bound on nextLink pagination so a provider that keeps handing
	// back continuation tokens cannot loop the build forever
	maxCostPages = 25
)

// The SDK enum only declares Daily, but the query API also accepts Monthly,
// which is what a one-month window wants.
var granularityMonthly = armcostmanagement.GranularityType("Monthly")

func NewService(subscriptionID string, gateway Invoker, delay time.Duration) *service {
	return &service{
		subscriptionID: subscriptionID,
		gateway:        gateway,
		delay:          delay,
	}
}

// BuildCostCache implements CostManagementService. It issues one cost query
// per resource group for the previous full calendar month, grouped by
// resource identity, and merges every page of results into a single cache
// keyed by lowercased resource ID. A failing group is logged and skipped so
// the remaining groups still resolve; its resources fall back to the cache's
// zero-cost placeholder at lookup time. The second return value counts rows
// that came back but could not be normalized into a cost record.
func (s *service) BuildCostCache(ctx context.Context, resourceGroups []string) (model.CostCache, int) {
	cache := make(model.CostCache)
	unresolved := 0

	start, end := previousMonthWindow(time.Now().UTC())

	for i, resourceGroup := range resourceGroups {
		if i > 0 && s.delay > 0 {
			time.Sleep(s.delay)
		}

		records, bad, err := s.queryGroup(ctx, resourceGroup, start, end)
		if err != nil {
			log.Warn().
				Err(err).
				Str("resource_group", resourceGroup).
				Msg("cost query failed, skipping group")
			continue
		}

		unresolved += bad
		for id, record := range records {
			// Last write wins; a resource belongs to exactly one group so
			// collisions are not expected across groups.
			cache[id] = record
		}
	}

	return cache, unresolved
}

func (s *service) queryGroup(ctx context.Context, resourceGroup string, start, end time.Time) (map[string]model.CostRecord, int, error) {
	definition := costQuery(start, end)
	body, err := json.Marshal(definition)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal cost query: %w", err)
	}

	records := make(map[string]model.CostRecord)
	unresolved := 0

	url := s.queryURL(resourceGroup)
	for page := 1; ; page++ {
		resp, err := s.gateway.Invoke(ctx, http.MethodPost, url, body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to query costs for %s: %w", resourceGroup, err)
		}

		payload, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read cost response for %s: %w", resourceGroup, err)
		}

		if resp.StatusCode != http.StatusOK {
			return nil, 0, fmt.Errorf("cost query for %s returned status %d: %s", resourceGroup, resp.StatusCode, string(payload))
		}

		var result armcostmanagement.QueryResult
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, 0, fmt.Errorf("failed to decode cost response for %s: %w", resourceGroup, err)
		}

		unresolved += collectRows(&result, records)

		next := nextLink(&result)
		if next == "" {
			break
		}
		if next == url {
			log.Warn().Str("resource_group", resourceGroup).Msg("cost query repeated its continuation link, stopping pagination")
			break
		}
		if page >= maxCostPages {
			log.Warn().Str("resource_group", resourceGroup).Int("pages", page).Msg("cost query pagination bound reached")
			break
		}
		url = next
	}

	return records, unresolved, nil
}

// collectRows normalizes every returned row into the records map and returns
// the count of rows that could not be parsed
func collectRows(result *armcostmanagement.QueryResult, records map[string]model.CostRecord) int {
	if result.Properties == nil || result.Properties.Rows == nil {
		return 0
	}

	cols := resolveColumns(result.Properties.Columns)
	unresolved := 0

	for _, row := range result.Properties.Rows {
		record, id, ok := parseRow(row, cols)
		if !ok {
			unresolved++
			continue
		}
		records[strings.ToLower(id)] = record
	}

	return unresolved
}

// columnIndexes locates the fields this tool cares about inside the query's
// column list; the service does not rely on the provider's column order
type columnIndexes struct {
	cost         int
	billingMonth int
	resourceID   int
	currency     int
}

func resolveColumns(columns []*armcostmanagement.QueryColumn) columnIndexes {
	cols := columnIndexes{cost: -1, billingMonth: -1, resourceID: -1, currency: -1}
	for i, column := range columns {
		if column == nil || column.Name == nil {
			continue
		}
		switch {
		case strings.EqualFold(*column.Name, "Cost"):
			cols.cost = i
		case strings.EqualFold(*column.Name, "BillingMonth"):
			cols.billingMonth = i
		case strings.EqualFold(*column.Name, "ResourceId"):
			cols.resourceID = i
		case strings.EqualFold(*column.Name, "Currency"):
			cols.currency = i
		}
	}
	return cols
}

func parseRow(row []any, cols columnIndexes) (model.CostRecord, string, bool) {
	if cols.cost < 0 || cols.resourceID < 0 || cols.cost >= len(row) || cols.resourceID >= len(row) {
		return model.CostRecord{}, "", false
	}

	cost, ok := row[cols.cost].(float64)
	if !ok || cost < 0 {
		return model.CostRecord{}, "", false
	}

	id, ok := row[cols.resourceID].(string)
	if !ok || id == "" {
		return model.CostRecord{}, "", false
	}

	currency := ""
	if cols.currency >= 0 && cols.currency < len(row) {
		currency, _ = row[cols.currency].(string)
	}

	period := ""
	if cols.billingMonth >= 0 && cols.billingMonth < len(row) {
		period = formatBillingPeriod(row[cols.billingMonth])
	}

	return model.CostRecord{
		Amount:        model.Round2(cost),
		Currency:      currency,
		BillingPeriod: period,
	}, id, true
}

// formatBillingPeriod turns the BillingMonth cell into a readable label, e.g.
// "2024-07-01T00:00:00" becomes "July 2024"
func formatBillingPeriod(cell any) string {
	raw, ok := cell.(string)
	if !ok {
		return fmt.Sprintf("%v", cell)
	}
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("January 2006")
		}
	}
	return raw
}

func nextLink(result *armcostmanagement.QueryResult) string {
	if result.Properties == nil || result.Properties.NextLink == nil {
		return ""
	}
	return *result.Properties.NextLink
}

func (s *service) queryURL(resourceGroup string) string {
	return fmt.Sprintf("%s/subscriptions/%s/resourceGroups/%s/providers/Microsoft.CostManagement/query?api-version=%s",
		managementEndpoint, s.subscriptionID, resourceGroup, apiVersion)
}

// previousMonthWindow returns the prior full calendar month in UTC: the first
// of the month at midnight through the last day at 23:59:59
func previousMonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), 0, 23, 59, 59, 0, time.UTC)
	return start, end
}

func costQuery(start, end time.Time) armcostmanagement.QueryDefinition {
	return armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(start),
			To:   to.Ptr(end),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(granularityMonthly),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ResourceId"),
				},
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ResourceType"),
				},
			},
		},
	}
}
