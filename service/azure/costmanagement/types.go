package azurecostmanagement

import (
	"context"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

// Invoker is the retry gateway surface the builder depends on
type Invoker interface {
	Invoke(ctx context.Context, method, url string, body []byte) (*http.Response, error)
}

type service struct {
	subscriptionID string
	gateway        Invoker
	delay          time.Duration
}

// CostManagementService builds the per-subscription cost cache used to join
// billing data onto discovered resources
type CostManagementService interface {
	BuildCostCache(ctx context.Context, resourceGroups []string) (model.CostCache, int)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
