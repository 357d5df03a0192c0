// Package display renders formatted activity lines to a terminal.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/nixlim/gh-activity/internal/activity"
)

// kindStyles maps event kinds to their display styles. Kinds without an
// entry render dim.
var kindStyles = map[string]lipgloss.Style{
	"Push":        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	"Issues":      lipgloss.NewStyle().Foreground(lipgloss.Color("222")),
	"PullRequest": lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	"Watch":       lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	"Fork":        lipgloss.NewStyle().Foreground(lipgloss.Color("183")),
	"Create":      lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	"Delete":      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	"Release":     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	"Public":      lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Renderer prints activity for one user. Limit caps the number of lines;
// Plain suppresses all styling.
type Renderer struct {
	Out   io.Writer
	Limit int
	Plain bool
}

// NewRenderer returns a renderer writing to out with the given line cap.
func NewRenderer(out io.Writer, limit int, plain bool) *Renderer {
	return &Renderer{Out: out, Limit: limit, Plain: plain}
}

// Render prints the activity header and up to Limit lines in order. An
// empty slice prints the no-activity message instead.
func (r *Renderer) Render(username string, lines []activity.Line) error {
	if len(lines) == 0 {
		_, err := fmt.Fprintf(r.Out, "No recent activity found for user '%s'\n", username)
		return err
	}

	header := fmt.Sprintf("Recent activity for %s:", username)
	if !r.Plain {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(r.Out, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.Out); err != nil {
		return err
	}

	count := len(lines)
	if r.Limit > 0 && count > r.Limit {
		count = r.Limit
	}

	for _, line := range lines[:count] {
		text := line.Text
		if !r.Plain {
			text = styleFor(line.Kind).Render(text)
		}
		if _, err := fmt.Fprintln(r.Out, text); err != nil {
			return err
		}
	}
	return nil
}

func styleFor(kind string) lipgloss.Style {
	if style, ok := kindStyles[kind]; ok {
		return style
	}
	return dimStyle
}
