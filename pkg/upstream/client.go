// Package upstream pkg/upstream/client.go HTTP client for the appliance API.
package upstream

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRequestTimeout = 10 * time.Second
	defaultRatePerSecond  = 5
	apiKeyHeader          = "X-Api-Key"
)

// ClientOptions configures the appliance transport.
type ClientOptions struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration // per-call cap; requests are bounded by this rather than cooperatively cancelled
	RatePerSecond  float64       // shared pacing across endpoints
}

// Client talks to the appliance API. It is the sole writer of the
// FailureTracker it is constructed with.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	tracker    *FailureTracker
	logger     *log.Logger
}

// NewClient builds a transport for the appliance. The appliance presents a
// self-signed certificate, so verification is disabled on purpose.
func NewClient(opts ClientOptions, tracker *FailureTracker, logger *log.Logger) *Client {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	perSecond := opts.RatePerSecond
	if perSecond <= 0 {
		perSecond = defaultRatePerSecond
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // self-signed appliance cert
			},
		},
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
		tracker: tracker,
		logger:  logger,
	}
}

// Tracker exposes the failure state for the status API and the sync layer.
func (c *Client) Tracker() *FailureTracker {
	return c.tracker
}

// Fetch performs one polling GET. The outcome is recorded in the failure
// tracker. A non-2xx response is not an error here: the appliance
// responded, so the payload is simply nil.
func (c *Client) Fetch(ctx context.Context, endpoint string) ([]byte, error) {
	payload, kind, err := c.do(ctx, http.MethodGet, endpoint, nil)

	c.tracker.Observe(endpoint, kind)

	switch kind {
	case FailureNone:
		return payload, nil
	case FailureStatus:
		c.logger.Printf("Warning: %s returned a status error: %v", endpoint, err)
		return nil, nil
	case FailureTLS:
		c.logger.Printf("Warning: ignoring certificate error on %s: %v", endpoint, err)
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s (%s): %w", errRequestFailed, endpoint, kind, err)
	}
}

// Get is the one-shot read used by manual recovery. It fast-fails with a
// nil payload while the appliance is marked unavailable; real call errors
// propagate because an operator is waiting on the result.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.oneShot(ctx, http.MethodGet, endpoint, nil)
}

// Post is the one-shot POST counterpart of Get.
func (c *Client) Post(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	return c.oneShot(ctx, http.MethodPost, endpoint, body)
}

// Put is the one-shot PUT counterpart of Get.
func (c *Client) Put(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	return c.oneShot(ctx, http.MethodPut, endpoint, body)
}

// Delete is the one-shot DELETE counterpart of Get.
func (c *Client) Delete(ctx context.Context, endpoint string) ([]byte, error) {
	return c.oneShot(ctx, http.MethodDelete, endpoint, nil)
}

func (c *Client) oneShot(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	if !c.tracker.ServiceAvailable() {
		c.logger.Printf("Warning: skipping %s %s, appliance marked unavailable", method, endpoint)
		return nil, nil
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	payload, kind, err := c.do(ctx, method, endpoint, reader)

	c.tracker.Observe(endpoint, kind)

	if kind == FailureNone {
		return payload, nil
	}

	if err == nil {
		err = fmt.Errorf("%w: %s", errRequestFailed, kind)
	}

	return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
}

// do executes one request and classifies the outcome. endpoint may carry a
// query string (e.g. "/wanusage?days=7").
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, FailureKind, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, FailureTimeout, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, FailureNoResponse, err
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyError(err), err
	}

	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Printf("failed to close response body: %v", cerr)
		}
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, FailureNoResponse, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, FailureStatus, fmt.Errorf("%w: %s %s: %s", errStatusError, method, endpoint, resp.Status)
	}

	return payload, FailureNone, nil
}
