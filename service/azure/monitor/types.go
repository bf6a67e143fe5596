package azuremonitor

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

type service struct {
	client *armmonitor.MetricsClient
}

// MetricsService retrieves 30-day utilization figures for one resource.
// A resource with no recorded datapoints yields a sample with nil fields,
// never a fabricated zero.
type MetricsService interface {
	GetUtilization(ctx context.Context, resourceID string, unit model.CapacityUnitKind) (model.UtilizationSample, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
