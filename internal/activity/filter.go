package activity

import (
	"fmt"
	"strings"
)

// Filter restricts output to a set of event kinds. An empty filter
// matches everything.
type Filter struct {
	// Kinds is the set of stripped kind names to display ("Push",
	// "Issues", ...). If empty, all kinds are shown.
	Kinds map[string]bool
}

// kindTokens maps the user-facing filter tokens to stripped kind names.
var kindTokens = map[string]string{
	"push":         "Push",
	"issues":       "Issues",
	"pull-request": "PullRequest",
	"watch":        "Watch",
	"fork":         "Fork",
	"create":       "Create",
	"delete":       "Delete",
	"release":      "Release",
	"public":       "Public",
}

// NewFilter returns a filter that matches all kinds.
func NewFilter() Filter {
	return Filter{}
}

// ParseFilter builds a filter from a comma-separated list of kind
// tokens, e.g. "push,issues,pull-request". An empty string yields a
// match-all filter; an unrecognized token is an error.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NewFilter(), nil
	}

	kinds := make(map[string]bool)
	for _, token := range strings.Split(s, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		kind, ok := kindTokens[token]
		if !ok {
			return Filter{}, fmt.Errorf("unknown event kind %q", token)
		}
		kinds[kind] = true
	}
	return Filter{Kinds: kinds}, nil
}

// Matches reports whether the line passes this filter.
func (f *Filter) Matches(line Line) bool {
	if len(f.Kinds) == 0 {
		return true
	}
	return f.Kinds[line.Kind]
}

// Apply returns the lines matching the filter, preserving order.
func (f *Filter) Apply(lines []Line) []Line {
	if len(f.Kinds) == 0 {
		return lines
	}
	var out []Line
	for _, line := range lines {
		if f.Matches(line) {
			out = append(out, line)
		}
	}
	return out
}
