package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

func NewService(credential *Credential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{client: client}, nil
}

// GetSubscriptionInfo implements IdentityService
func (s *service) GetSubscriptionInfo(ctx context.Context, subscriptionID string) (*armsubscriptions.Subscription, error) {
	resp, err := s.client.Get(ctx, subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription info: %w", err)
	}

	return &resp.Subscription, nil
}

// ListSubscriptionIDs implements IdentityService. It returns every
// subscription the credential can reach; an empty result means the run has
// no scope to work on.
func (s *service) ListSubscriptionIDs(ctx context.Context) ([]string, error) {
	var ids []string

	pager := s.client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list subscriptions: %w", err)
		}

		for _, subscription := range page.Value {
			if subscription.SubscriptionID != nil {
				ids = append(ids, *subscription.SubscriptionID)
			}
		}
	}

	return ids, nil
}
