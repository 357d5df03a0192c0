// Package github fetches a user's public activity from the GitHub
// events API and classifies failures into typed errors.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "gh-activity/1.0"
	// DefaultTimeout bounds both connect and read for the one request.
	DefaultTimeout = 10 * time.Second

	acceptHeader = "application/vnd.github.v3+json"
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds the immutable settings a Client is built with.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client talks to the GitHub events API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient HTTPClient
}

// NewClient creates a client from config. A nil httpClient gets a
// default *http.Client bound by the configured timeout.
func NewClient(config ClientConfig, httpClient HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// FetchEvents retrieves the user's recent public events, most recent
// first. Failures are classified: *NotFoundError on 404, ErrRateLimited
// on 403, *APIError on any other non-200, *NetworkError on transport
// failure, ErrEmptyUsername before any request when the username is
// blank.
func (c *Client) FetchEvents(ctx context.Context, username string) ([]Event, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	reqURL := fmt.Sprintf("%s/users/%s/events", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &NotFoundError{Username: username}
	case http.StatusForbidden:
		return nil, ErrRateLimited
	default:
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}

	return events, nil
}
