package model

import (
	"math"
	"strings"
)

// NoDataPeriod marks a CostRecord that was synthesized for a resource absent
// from the billing cache.
const NoDataPeriod = "No data"

// CostRecord is the billed amount for one resource over one billing period
type CostRecord struct {
	Amount        float64
	Currency      string
	BillingPeriod string
}

// CostCache maps lowercased ARM resource IDs to their last-month cost.
// It is built once per subscription and read-only afterwards.
type CostCache map[string]CostRecord

// Lookup returns the cost record for a resource ID, matching
// case-insensitively. A miss returns a zero-cost record with the NoDataPeriod
// marker; the currency is borrowed from any cached entry so the report does
// not show an empty currency column when other resources have billing data.
func (c CostCache) Lookup(resourceID string) CostRecord {
	if record, ok := c[strings.ToLower(resourceID)]; ok {
		return record
	}

	currency := ""
	for _, record := range c {
		if record.Currency != "" {
			currency = record.Currency
			break
		}
	}

	return CostRecord{Amount: 0, Currency: currency, BillingPeriod: NoDataPeriod}
}

// Round2 rounds a monetary amount to two decimal places. Every derived cost
// is rounded with this, not only the final report values, so intermediate
// arithmetic matches what is printed.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
