// Package fetch retrieves raw CSV bodies from external sources. It is the
// only place the service touches the network; everything downstream works
// on already-retrieved text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches CSV documents over HTTP with a body size cap.
type Client struct {
	http     *http.Client
	maxBytes int64
}

// New creates a fetch client. maxBytes caps the response body; bodies that
// exceed it fail the fetch rather than truncate silently.
func New(timeout time.Duration, maxBytes int64) *Client {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// CSV fetches the body at url and returns it as text. Any network error,
// non-2xx status, or oversized body is returned as an error; the caller is
// responsible for leaving its current state untouched on failure.
func (c *Client) CSV(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return "", fmt.Errorf("fetch %s: body exceeds %d bytes", url, c.maxBytes)
	}
	return string(body), nil
}

// CloseIdle releases idle keep-alive connections. Called at shutdown.
func (c *Client) CloseIdle() {
	c.http.CloseIdleConnections()
}
