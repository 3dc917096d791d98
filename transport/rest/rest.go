// Package rest holds the HTTP plumbing shared by the catalog and booking
// clients: base URL handling, JSON encoding, and response body capture for
// error mapping. Interpretation of status codes stays in the domain clients.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adbooking/config"
)

const basePath = "/api/v1"

type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/") + basePath,
		http: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		},
	}
}

// Response is a fully read backend response. The body is kept as bytes so a
// failed call can surface the backend's message text verbatim.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the response carries a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// BodyText returns the response body as trimmed text, empty when absent.
func (r Response) BodyText() string {
	return strings.TrimSpace(string(r.Body))
}

// Decode unmarshals the response body into the given value.
func (r Response) Decode(into any) error {
	if err := json.Unmarshal(r.Body, into); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	target := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Response{}, fmt.Errorf("building GET %s: %w", path, err)
	}

	return c.do(req)
}

func (c *Client) Post(ctx context.Context, path string, payload any) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("building POST %s: %w", path, err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) Patch(ctx context.Context, path string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, nil)
	if err != nil {
		return Response{}, fmt.Errorf("building PATCH %s: %w", path, err)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
