package azureconfig

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

type service struct {
	credential *azidentity.DefaultAzureCredential
}

type ConfigService interface {
	GetCredential() *azidentity.DefaultAzureCredential
}
