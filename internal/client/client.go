// Package client holds the HTTP clients for the three collaborating
// services: customer lookup, product purchase and payment. Each client is an
// interface so the order service can be tested against fakes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// StatusError is returned when a collaborator answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// caller is the shared HTTP plumbing: JSON round-trips with a per-call
// timeout and a circuit breaker guarding the remote service.
type caller struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func newCaller(name, baseURL string, timeout time.Duration) caller {
	return caller{
		baseURL: baseURL,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		timeout: timeout,
		breaker: gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:    name,
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// 4xx means the remote service is healthy and rejected our
			// request; only transport errors and 5xx should trip the breaker.
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				var statusErr *StatusError
				return errors.As(err, &statusErr) &&
					statusErr.StatusCode >= 400 && statusErr.StatusCode < 500
			},
		}),
	}
}

// do performs one request through the breaker and returns the response body.
// Non-2xx responses come back as *StatusError and count as breaker failures,
// except 4xx which are the caller's fault, not the remote service's health.
func (c caller) do(ctx context.Context, method, path string, body any, headers map[string]string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.breaker.Execute(func() ([]byte, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}
		return respBody, nil
	})
}
