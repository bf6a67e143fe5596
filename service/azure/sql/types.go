package azuresql

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/sql/armsql"
	"github.com/kgnielsen777/AzureFinopsTools/model"
)

type service struct {
	subscriptionID  string
	serversClient   *armsql.ServersClient
	databasesClient *armsql.DatabasesClient
	poolsClient     *armsql.ElasticPoolsClient
}

// SQLService discovers the scorable SQL estate of one subscription: elastic
// pools and databases that are not pool members
type SQLService interface {
	ListDescriptors(ctx context.Context) ([]model.ResourceDescriptor, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
