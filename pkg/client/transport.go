// Package client is a Go SDK for the service desk API. It wraps the
// HTTP transport with bearer authentication and uniform error
// surfacing, and exposes typed domain modules on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// AuthError is returned for HTTP 401 responses so callers can
// distinguish an expired or missing token from other failures.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// APIError is returned for any non-2xx response other than 401.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New builds a client for the given API base URL (for example
// "http://localhost:8080/v1"). The token may be empty for
// unauthenticated calls such as login.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.DefaultClient,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues a JSON request against path and decodes the response body
// into out when out is non-nil. A 204 response leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.doRaw(ctx, method, path, query, reader, contentType, out)
}

// doRaw is the multipart-friendly variant: the caller supplies the body
// reader and content type (empty content type sends no header, letting
// multipart writers set their own boundary).
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[client] %s %s failed: %v", method, path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		apiErr := &AuthError{Message: errorMessage(resp)}
		log.Printf("[client] %s %s failed: %v", method, path, apiErr)
		return apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
		log.Printf("[client] %s %s failed: %v", method, path, apiErr)
		return apiErr
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// errorMessage extracts a display message from an error response body:
// the detail field, then message, then "API Error: <status>". A body
// that is not valid JSON falls back to the HTTP status text.
func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(raw) {
		return http.StatusText(resp.StatusCode)
	}

	var parsed struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return http.StatusText(resp.StatusCode)
	}
	if parsed.Detail != "" {
		return parsed.Detail
	}
	if parsed.Message != "" {
		return parsed.Message
	}
	return fmt.Sprintf("API Error: %d", resp.StatusCode)
}
