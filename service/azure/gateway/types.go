package azuregateway

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// pipeline is the slice of runtime.Pipeline the gateway needs; tests swap in
// a fake without touching the network
type pipeline interface {
	Do(req *policy.Request) (*http.Response, error)
}

type service struct {
	pl          pipeline
	maxAttempts int
}

// GatewayService issues a single ARM request with throttling-aware retries.
// When every attempt is rate-limited the last 429 response is returned with a
// nil error; callers must check the status code.
type GatewayService interface {
	Invoke(ctx context.Context, method, url string, body []byte) (*http.Response, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
