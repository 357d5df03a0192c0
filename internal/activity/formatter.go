// Package activity turns GitHub events into human-readable display
// lines, one per describable event.
package activity

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nixlim/gh-activity/internal/github"
)

// FormatEvents maps events to display lines in input order. Events
// without a type or repository name are dropped; events whose payload
// matches no template are suppressed. The events API returns most
// recent first and that order is preserved.
func FormatEvents(events []github.Event) []Line {
	var lines []Line
	for _, e := range events {
		if line, ok := FormatEvent(e); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// FormatEvent renders a single event. The second return is false when
// the event produces no output: missing type or repo name, or a
// recognized type whose payload matches no template (e.g. an
// unpublished release).
func FormatEvent(e github.Event) (Line, bool) {
	if e.Type == "" || e.Repo.Name == "" {
		return Line{}, false
	}

	text, ok := describe(e)
	if !ok {
		return Line{}, false
	}

	return Line{
		Kind:      strings.TrimSuffix(e.Type, "Event"),
		Repo:      e.Repo.Name,
		Text:      "- " + text,
		Timestamp: e.CreatedAt,
	}, true
}

func describe(e github.Event) (string, bool) {
	repo := e.Repo.Name

	switch e.Type {
	case "PushEvent":
		n := commitCount(e.Payload)
		return fmt.Sprintf("Pushed %d commit%s to %s", n, plural(n), repo), true

	case "IssuesEvent":
		switch action := e.Payload.Action; action {
		case "opened":
			return "Opened a new issue in " + repo, true
		case "closed":
			return "Closed an issue in " + repo, true
		case "":
			return "", false
		default:
			return capitalize(action) + " an issue in " + repo, true
		}

	case "WatchEvent":
		return "Starred " + repo, true

	case "ForkEvent":
		return "Forked " + repo, true

	case "CreateEvent":
		switch e.Payload.RefType {
		case "repository":
			return "Created repository " + repo, true
		case "branch":
			return "Created branch " + refOrUnknown(e.Payload.Ref) + " in " + repo, true
		case "tag":
			return "Created tag " + refOrUnknown(e.Payload.Ref) + " in " + repo, true
		default:
			return "", false
		}

	case "DeleteEvent":
		refType := e.Payload.RefType
		if refType == "" {
			refType = "branch"
		}
		return "Deleted " + refType + " " + refOrUnknown(e.Payload.Ref) + " in " + repo, true

	case "PullRequestEvent":
		switch action := e.Payload.Action; action {
		case "opened":
			return "Opened a pull request in " + repo, true
		case "closed":
			if e.Payload.PullRequest != nil && e.Payload.PullRequest.Merged {
				return "Merged a pull request in " + repo, true
			}
			return "Closed a pull request in " + repo, true
		case "":
			return "", false
		default:
			return capitalize(action) + " a pull request in " + repo, true
		}

	case "ReleaseEvent":
		if e.Payload.Action != "published" {
			return "", false
		}
		tag := "unknown"
		if e.Payload.Release != nil && e.Payload.Release.TagName != "" {
			tag = e.Payload.Release.TagName
		}
		return "Published release " + tag + " in " + repo, true

	case "PublicEvent":
		return "Made " + repo + " public", true

	default:
		return strings.TrimSuffix(e.Type, "Event") + " in " + repo, true
	}
}

// commitCount determines how many commits a push carried: 1 when the
// list is absent, the list length when present. The API truncates the
// list at 20 entries, so a larger payload size wins over the length.
func commitCount(p github.Payload) int {
	if p.Commits == nil {
		return 1
	}
	n := len(p.Commits)
	if p.Size > n && n > 0 {
		return p.Size
	}
	return n
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// capitalize uppercases only the first rune, leaving the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func refOrUnknown(ref *string) string {
	if ref == nil || *ref == "" {
		return "unknown"
	}
	return *ref
}
