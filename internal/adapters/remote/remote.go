// Package remote fetches payloads over HTTP(S), such as the public
// AirNow exports on S3.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// HTTPSource downloads whole objects by URL.
type HTTPSource struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPSource creates a source using client, or a fresh client when nil.
func NewHTTPSource(client *http.Client, timeout time.Duration) *HTTPSource {
	if client == nil {
		client = &http.Client{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPSource{client: client, timeout: timeout}
}

// Fetch GETs url and returns the body as stored. Accept-Encoding is pinned
// to identity so the transport never inflates a gzip body on our behalf.
func (h *HTTPSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return data, nil
}

func (h *HTTPSource) Handles(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
