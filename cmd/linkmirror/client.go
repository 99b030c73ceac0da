package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// cmd/linkmirror/client.go

// apiClient is a thin wrapper over the daemon's HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(serverURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *apiClient) get(path string, dst interface{}) error {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("calling daemon: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, dst)
}

func (c *apiClient) post(path string, dst interface{}) error {
	resp, err := c.http.Post(c.baseURL+path, "application/json", http.NoBody)
	if err != nil {
		return fmt.Errorf("calling daemon: %w", err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, dst)
}

func decodeResponse(resp *http.Response, dst interface{}) error {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("daemon returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if dst == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// formatBytes renders a byte count in binary units.
func formatBytes(n int64) string {
	const unit = 1024

	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
