package service

import (
	"context"
	"io"

	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// DiscoveryService enumerates the scorable resources of one subscription
type DiscoveryService interface {
	ListDescriptors(ctx context.Context) ([]model.ResourceDescriptor, error)
}

// MetricsService supplies 30-day utilization samples per resource
type MetricsService interface {
	GetUtilization(ctx context.Context, resourceID string, unit model.CapacityUnitKind) (model.UtilizationSample, error)
}

// CostService builds the per-subscription billing cache
type CostService interface {
	BuildCostCache(ctx context.Context, resourceGroups []string) (model.CostCache, int)
}

// ReportSink persists the final row list
type ReportSink interface {
	Write(w io.Writer, rows []model.ReportRow, summary model.RunSummary) error
	WriteFile(path string, rows []model.ReportRow, summary model.RunSummary) error
}
