package azuregateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	responses []*http.Response
	errs      []error
	calls     int
}

func (f *fakePipeline) Do(req *policy.Request) (*http.Response, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp *http.Response
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func response(status int, headers map[string]string) *http.Response {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader("{}")),
	}
}

func TestInvoke_Success(t *testing.T) {
	pl := &fakePipeline{responses: []*http.Response{response(http.StatusOK, nil)}}
	s := &service{pl: pl, maxAttempts: 5}

	resp, err := s.Invoke(context.Background(), http.MethodPost, "https://example.test/query", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, pl.calls)
}

func TestInvoke_RetriesThrottling(t *testing.T) {
	pl := &fakePipeline{responses: []*http.Response{
		response(http.StatusTooManyRequests, map[string]string{"Retry-After": "1"}),
		response(http.StatusOK, nil),
	}}
	s := &service{pl: pl, maxAttempts: 5}

	start := time.Now()
	resp, err := s.Invoke(context.Background(), http.MethodPost, "https://example.test/query", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, pl.calls)
	// The server's Retry-After hint is honored
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestInvoke_ExhaustedReturnsLastResponse(t *testing.T) {
	pl := &fakePipeline{responses: []*http.Response{
		response(http.StatusTooManyRequests, nil),
	}}
	s := &service{pl: pl, maxAttempts: 1}

	resp, err := s.Invoke(context.Background(), http.MethodPost, "https://example.test/query", nil)
	require.NoError(t, err)
	// The caller gets the throttled response back, not an error
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, 1, pl.calls)
}

func TestInvoke_TransportErrorNotRetried(t *testing.T) {
	pl := &fakePipeline{errs: []error{errors.New("connection refused")}}
	s := &service{pl: pl, maxAttempts: 5}

	_, err := s.Invoke(context.Background(), http.MethodPost, "https://example.test/query", nil)
	require.Error(t, err)
	assert.Equal(t, 1, pl.calls)
}

func TestInvoke_NonThrottleStatusReturnedImmediately(t *testing.T) {
	pl := &fakePipeline{responses: []*http.Response{response(http.StatusBadRequest, nil)}}
	s := &service{pl: pl, maxAttempts: 5}

	resp, err := s.Invoke(context.Background(), http.MethodPost, "https://example.test/query", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 1, pl.calls)
}

func TestBackoffDelay(t *testing.T) {
	tests := []struct {
		name       string
		attempt    int
		retryAfter string
		want       time.Duration
	}{
		{"first attempt exponential", 1, "", time.Second},
		{"second attempt exponential", 2, "", 2 * time.Second},
		{"third attempt exponential", 3, "", 4 * time.Second},
		{"server hint wins", 1, "7", 7 * time.Second},
		{"zero hint falls back", 2, "0", 2 * time.Second},
		{"garbage hint falls back", 3, "soon", 4 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backoffDelay(tt.attempt, tt.retryAfter))
		})
	}
}
