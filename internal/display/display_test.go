package display

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nixlim/gh-activity/internal/activity"
)

func TestRender_Empty(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, 20, true)

	if err := r.Render("octocat", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "No recent activity found for user 'octocat'\n"
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestRender_HeaderAndLines(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, 20, true)

	lines := []activity.Line{
		{Kind: "Push", Text: "- Pushed 3 commits to octo/repo"},
		{Kind: "Watch", Text: "- Starred octo/other"},
	}
	if err := r.Render("octocat", lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Recent activity for octocat:\n" +
		"\n" +
		"- Pushed 3 commits to octo/repo\n" +
		"- Starred octo/other\n"
	if buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

func TestRender_CapsAtLimit(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, 20, true)

	var lines []activity.Line
	for i := 0; i < 50; i++ {
		lines = append(lines, activity.Line{
			Kind: "Watch",
			Text: fmt.Sprintf("- Starred repo/%d", i),
		})
	}
	if err := r.Render("octocat", lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header + blank + 20 activity lines
	if len(got) != 22 {
		t.Fatalf("want 22 output lines, got %d", len(got))
	}
	if got[2] != "- Starred repo/0" {
		t.Errorf("first activity line: got %q", got[2])
	}
	if got[21] != "- Starred repo/19" {
		t.Errorf("last activity line: got %q", got[21])
	}
}

func TestRender_PreservesOrder(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, 5, true)

	lines := []activity.Line{
		{Kind: "Fork", Text: "- Forked a/b"},
		{Kind: "Push", Text: "- Pushed 1 commit to a/b"},
		{Kind: "Public", Text: "- Made a/b public"},
	}
	if err := r.Render("octocat", lines); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	forked := strings.Index(out, "Forked")
	pushed := strings.Index(out, "Pushed")
	public := strings.Index(out, "public")
	if !(forked < pushed && pushed < public) {
		t.Errorf("output reordered: %q", out)
	}
}

func TestStyleFor_UnknownKindIsDim(t *testing.T) {
	if styleFor("Gollum").GetForeground() != dimStyle.GetForeground() {
		t.Error("unknown kinds should use the dim style")
	}
}
