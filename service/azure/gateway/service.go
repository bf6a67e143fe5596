package azuregateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/rs/zerolog/log"
)

const (
	moduleName    = "azurefinopstools"
	moduleVersion = "v1.0.0"

	managementScope = "https://management.azure.com/.default"

	defaultMaxAttempts = 5
)

func NewService(credential azcore.TokenCredential, maxAttempts int) *service {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	// The pipeline's own retry policy is disabled so this gateway owns the
	// backoff behavior end to end.
	pl := runtime.NewPipeline(moduleName, moduleVersion,
		runtime.PipelineOptions{
			PerRetry: []policy.Policy{
				runtime.NewBearerTokenPolicy(credential, []string{managementScope}, nil),
			},
		},
		&policy.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		})

	return &service{
		pl:          pl,
		maxAttempts: maxAttempts,
	}
}

// Invoke implements GatewayService. Rate-limit responses are retried with
// exponential backoff, preferring the server's Retry-After hint. Any other
// transport failure is returned immediately.
func (s *service) Invoke(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var resp *http.Response

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		req, err := runtime.NewRequest(ctx, method, url)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}

		if len(body) > 0 {
			if err := req.SetBody(streaming.NopCloser(bytes.NewReader(body)), "application/json"); err != nil {
				return nil, fmt.Errorf("failed to set request body: %w", err)
			}
		}

		resp, err = s.pl.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		delay := backoffDelay(attempt, resp.Header.Get("Retry-After"))
		log.Warn().
			Int("attempt", attempt).
			Dur("delay", delay).
			Str("url", url).
			Msg("request throttled, backing off")

		drain(resp)

		select {
		case <-ctx.Done():
			return resp, ctx.Err()
		case <-time.After(delay):
		}
	}

	// Retries exhausted while still throttled; hand the caller the last
	// response so it can choose to skip.
	return resp, nil
}

// backoffDelay computes the wait before the next attempt: the server's
// Retry-After seconds when present, otherwise 2^(attempt-1) seconds.
func backoffDelay(attempt int, retryAfter string) time.Duration {
	if retryAfter != "" {
		if secs, err := strconv.Atoi(retryAfter); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(1<<uint(attempt-1)) * time.Second
}

func drain(resp *http.Response) {
	if resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
