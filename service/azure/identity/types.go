package azureidentity

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

type service struct {
	client *armsubscriptions.Client
}

// IdentityService resolves which subscription scopes a run should cover
type IdentityService interface {
	GetSubscriptionInfo(ctx context.Context, subscriptionID string) (*armsubscriptions.Subscription, error)
	ListSubscriptionIDs(ctx context.Context) ([]string, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
