// Package client is the HTTP client for the external mexase record API. All
// persistence (patients, nutritionists, consultations, auth) lives behind
// that API; this service only ever talks to it request/response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 12 * time.Second

// ErrNotFound is returned when the record API answers 404 for an addressed
// resource.
var ErrNotFound = errors.New("record not found")

// ErrTokenExpired is returned when the record API rejects the bearer token as
// expired; callers translate it into a fresh-login redirect.
var ErrTokenExpired = errors.New("token expired")

// APIError is a non-2xx answer from the record API that is neither a 404 nor
// an expired token. The upstream message is carried verbatim so it can be
// surfaced to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("record api: status %d", e.Status)
	}
	return fmt.Sprintf("record api: %s (status %d)", e.Message, e.Status)
}

// Client calls the mexase record API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the record API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// errBody is the error envelope the record API uses; some endpoints answer
// {"message": ...}, others {"error": ...}.
type errBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s %s request: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errBody
		_ = json.Unmarshal(data, &eb)
		msg := eb.Message
		if msg == "" {
			msg = eb.Error
		}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
		case resp.StatusCode == http.StatusForbidden && strings.Contains(strings.ToLower(msg), "token expirado"):
			return fmt.Errorf("%s %s: %w", method, path, ErrTokenExpired)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}
