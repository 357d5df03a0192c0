package github

import (
	"errors"
	"fmt"
)

// ErrEmptyUsername is returned before any request is made when the
// username is empty or whitespace.
var ErrEmptyUsername = errors.New("username cannot be empty")

// ErrRateLimited is returned on HTTP 403 from the events API.
var ErrRateLimited = errors.New("API rate limit exceeded, try again later")

// NotFoundError is returned on HTTP 404 and names the missing user.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Username)
}

// APIError is returned for any other non-200 response.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: HTTP %d", e.StatusCode)
}

// NetworkError wraps a transport-level failure (connect, timeout, IO).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
