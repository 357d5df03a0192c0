package github

import "time"

// Event is one activity record from the GitHub events API. Only the
// fields the formatter consumes are decoded; payload fields are optional
// and present only for certain event types.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Repo      Repo      `json:"repo"`
	Payload   Payload   `json:"payload"`
}

// Repo identifies the repository an event occurred on.
type Repo struct {
	Name string `json:"name"`
}

// Payload carries the per-type event details. Pointer fields distinguish
// "absent" from zero values so callers can apply documented fallbacks.
type Payload struct {
	Action  string  `json:"action"`
	Ref     *string `json:"ref"`
	RefType string  `json:"ref_type"`

	// Size is the total commit count of a push; the commits list is
	// capped at 20 entries by the API.
	Size    int      `json:"size"`
	Commits []Commit `json:"commits"`

	PullRequest *PullRequest `json:"pull_request"`
	Release     *Release     `json:"release"`
}

// Commit is a single commit in a push payload.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// PullRequest holds the pull request details of a PullRequestEvent.
type PullRequest struct {
	Merged bool `json:"merged"`
}

// Release holds the release details of a ReleaseEvent.
type Release struct {
	TagName string `json:"tag_name"`
}
