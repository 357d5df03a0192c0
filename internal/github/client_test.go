package github

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const eventsBody = `[
	{"id": "1", "type": "PushEvent", "repo": {"name": "octo/repo"},
	 "payload": {"size": 3, "commits": [{"sha": "a"}, {"sha": "b"}, {"sha": "c"}]}},
	{"id": "2", "type": "WatchEvent", "repo": {"name": "octo/other"}, "payload": {"action": "started"}}
]`

func TestFetchEvents_Success(t *testing.T) {
	var gotUserAgent, gotAccept, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, eventsBody)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	events, err := c.FetchEvents(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/users/octocat/events" {
		t.Errorf("path: want /users/octocat/events, got %s", gotPath)
	}
	if gotUserAgent != DefaultUserAgent {
		t.Errorf("user agent: want %q, got %q", DefaultUserAgent, gotUserAgent)
	}
	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("accept: want application/vnd.github.v3+json, got %q", gotAccept)
	}

	if len(events) != 2 {
		t.Fatalf("want 2 events, got %d", len(events))
	}
	if events[0].Type != "PushEvent" || events[0].Repo.Name != "octo/repo" {
		t.Errorf("first event: got %+v", events[0])
	}
	if len(events[0].Payload.Commits) != 3 {
		t.Errorf("commits: want 3, got %d", len(events[0].Payload.Commits))
	}
	if events[1].Type != "WatchEvent" {
		t.Errorf("order not preserved: second event is %s", events[1].Type)
	}
}

func TestFetchEvents_TrimsUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/events" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		io.WriteString(w, "[]")
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	if _, err := c.FetchEvents(context.Background(), "  octocat  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchEvents_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	_, err := c.FetchEvents(context.Background(), "nobody")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("want *NotFoundError, got %v", err)
	}
	if notFound.Username != "nobody" {
		t.Errorf("username: want nobody, got %s", notFound.Username)
	}
}

func TestFetchEvents_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	_, err := c.FetchEvents(context.Background(), "octocat")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
}

func TestFetchEvents_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	_, err := c.FetchEvents(context.Background(), "octocat")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status: want 502, got %d", apiErr.StatusCode)
	}
}

func TestFetchEvents_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(ClientConfig{BaseURL: srv.URL}, nil)
	_, err := c.FetchEvents(context.Background(), "octocat")

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("want *NetworkError, got %v", err)
	}
	if netErr.Unwrap() == nil {
		t.Error("NetworkError should carry the underlying error")
	}
}

func TestFetchEvents_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "[]")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	_, err := c.FetchEvents(ctx, "octocat")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled in chain, got %v", err)
	}
}

func TestFetchEvents_EmptyUsername(t *testing.T) {
	c := NewClient(ClientConfig{}, requestFailer{t})

	for _, username := range []string{"", "   "} {
		_, err := c.FetchEvents(context.Background(), username)
		if !errors.Is(err, ErrEmptyUsername) {
			t.Errorf("username %q: want ErrEmptyUsername, got %v", username, err)
		}
	}
}

func TestFetchEvents_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "{not json")
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL}, srv.Client())
	_, err := c.FetchEvents(context.Background(), "octocat")
	if err == nil {
		t.Fatal("want decode error, got nil")
	}
	if !strings.Contains(err.Error(), "decoding events") {
		t.Errorf("error should name the decode step, got %v", err)
	}
}

func TestFetchEvents_ClosesBody(t *testing.T) {
	body := &closeRecorder{Reader: strings.NewReader(`[]`)}
	c := NewClient(ClientConfig{}, staticResponder{status: http.StatusOK, body: body})

	if _, err := c.FetchEvents(context.Background(), "octocat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !body.closed {
		t.Error("response body was not closed")
	}

	errBody := &closeRecorder{Reader: strings.NewReader(``)}
	c = NewClient(ClientConfig{}, staticResponder{status: http.StatusNotFound, body: errBody})
	if _, err := c.FetchEvents(context.Background(), "octocat"); err == nil {
		t.Fatal("want error on 404")
	}
	if !errBody.closed {
		t.Error("response body was not closed on the error path")
	}
}

// requestFailer fails the test if any request reaches it.
type requestFailer struct {
	t *testing.T
}

func (f requestFailer) Do(req *http.Request) (*http.Response, error) {
	f.t.Errorf("unexpected request to %s", req.URL)
	return nil, errors.New("unexpected request")
}

// staticResponder returns a canned response for every request.
type staticResponder struct {
	status int
	body   io.ReadCloser
}

func (r staticResponder) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{StatusCode: r.status, Body: r.body, Request: req}, nil
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}
