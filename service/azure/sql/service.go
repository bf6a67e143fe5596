package azuresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/kgnielsen777/AzureFinopsTools/model"
	"github.com/rs/zerolog/log"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	serversClient, err := armsql.NewServersClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL servers client: %w", err)
	}

	databasesClient, err := armsql.NewDatabasesClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQL databases client: %w", err)
	}

	poolsClient, err := armsql.NewElasticPoolsClient(subscriptionID, credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create elastic pools client: %w", err)
	}

	return &service{
		subscriptionID:  subscriptionID,
		serversClient:   serversClient,
		databasesClient: databasesClient,
		poolsClient:     poolsClient,
	}, nil
}

// ListDescriptors implements SQLService. It walks every server in the
// subscription and emits one descriptor per elastic pool and one per
// standalone database. Pool members are not emitted on their own: their
// capacity is governed by the pool, which is the scorable unit.
func (s *service) ListDescriptors(ctx context.Context) ([]model.ResourceDescriptor, error) {
	var descriptors []model.ResourceDescriptor

	pager := s.serversClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list SQL servers: %w", err)
		}

		for _, server := range page.Value {
			if server.ID == nil || server.Name == nil {
				continue
			}

			resourceGroup := extractResourceGroup(*server.ID)
			serverName := *server.Name

			pools, err := s.poolDescriptors(ctx, resourceGroup, serverName)
			if err != nil {
				log.Warn().Err(err).Str("server", serverName).Msg("failed to list elastic pools, skipping server's pools")
			} else {
				descriptors = append(descriptors, pools...)
			}

			databases, err := s.databaseDescriptors(ctx, resourceGroup, serverName)
			if err != nil {
				log.Warn().Err(err).Str("server", serverName).Msg("failed to list databases, skipping server's databases")
				continue
			}
			descriptors = append(descriptors, databases...)
		}
	}

	return descriptors, nil
}

func (s *service) poolDescriptors(ctx context.Context, resourceGroup, serverName string) ([]model.ResourceDescriptor, error) {
	var descriptors []model.ResourceDescriptor

	pager := s.poolsClient.NewListByServerPager(resourceGroup, serverName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list elastic pools for %s: %w", serverName, err)
		}

		for _, pool := range page.Value {
			if pool.ID == nil || pool.Name == nil || pool.SKU == nil || pool.SKU.Tier == nil || pool.SKU.Capacity == nil {
				continue
			}

			tier := model.ServiceTier(*pool.SKU.Tier)
			count, err := s.countPoolDatabases(ctx, resourceGroup, serverName, *pool.Name)
			if err != nil {
				// The member count is informational; the pool is still scored
				log.Warn().Err(err).Str("pool", *pool.Name).Msg("failed to count pool databases")
			}

			descriptors = append(descriptors, model.ResourceDescriptor{
				ID:            *pool.ID,
				Name:          *pool.Name,
				ServerName:    serverName,
				ResourceGroup: resourceGroup,
				Subscription:  s.subscriptionID,
				Type:          model.ResourcePool,
				Tier:          tier,
				Capacity:      *pool.SKU.Capacity,
				Unit:          model.UnitKindForTier(tier),
				PoolName:      *pool.Name,
				DatabaseCount: count,
			})
		}
	}

	return descriptors, nil
}

func (s *service) databaseDescriptors(ctx context.Context, resourceGroup, serverName string) ([]model.ResourceDescriptor, error) {
	var descriptors []model.ResourceDescriptor

	pager := s.databasesClient.NewListByServerPager(resourceGroup, serverName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list databases for %s: %w", serverName, err)
		}

		for _, database := range page.Value {
			if !isStandalone(database) {
				continue
			}

			tier := model.ServiceTier(*database.SKU.Tier)
			descriptors = append(descriptors, model.ResourceDescriptor{
				ID:            *database.ID,
				Name:          *database.Name,
				ServerName:    serverName,
				ResourceGroup: resourceGroup,
				Subscription:  s.subscriptionID,
				Type:          model.ResourceStandalone,
				Tier:          tier,
				Capacity:      *database.SKU.Capacity,
				Unit:          model.UnitKindForTier(tier),
			})
		}
	}

	return descriptors, nil
}

func (s *service) countPoolDatabases(ctx context.Context, resourceGroup, serverName, poolName string) (int, error) {
	count := 0
	pager := s.databasesClient.NewListByElasticPoolPager(resourceGroup, serverName, poolName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return count, fmt.Errorf("failed to list databases in pool %s: %w", poolName, err)
		}
		count += len(page.Value)
	}
	return count, nil
}

// isStandalone reports whether a database should be scored on its own:
// system databases and pool members are excluded
func isStandalone(database *armsql.Database) bool {
	if database == nil || database.ID == nil || database.Name == nil {
		return false
	}
	if strings.EqualFold(*database.Name, "master") {
		return false
	}
	if database.Properties != nil && database.Properties.ElasticPoolID != nil {
		return false
	}
	if database.SKU == nil || database.SKU.Tier == nil || database.SKU.Capacity == nil {
		return false
	}
	if strings.EqualFold(*database.SKU.Tier, "System") {
		return false
	}
	return true
}

// extractResourceGroup pulls the resource group out of an ARM resource ID
func extractResourceGroup(resourceID string) string {
	parts := strings.Split(resourceID, "/")
	for i, part := range parts {
		if strings.EqualFold(part, "resourceGroups") && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
