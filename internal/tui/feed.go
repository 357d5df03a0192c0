package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nixlim/gh-activity/internal/activity"
)

const (
	minWidth  = 40
	minHeight = 8
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// kindStyles maps event kinds to feed line colors.
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

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < minWidth {
		w = minWidth
	}
	h := m.height
	if h < minHeight {
		h = minHeight
	}

	header := headerStyle.Width(w).Render(" gh-activity  " + m.username)
	feed := m.renderFeedPanel(w, h-2)
	status := m.renderStatusBar(w)

	return header + "\n" + feed + "\n" + status
}

// renderFeedPanel renders the scrollable activity feed.
func (m Model) renderFeedPanel(w, h int) string {
	contentW := w - 4
	if contentW < 10 {
		contentW = 10
	}
	contentH := h - 2 // borders
	if contentH < 1 {
		contentH = 1
	}

	lines := m.visibleLines()

	if m.loading {
		content := dimStyle.Render("Fetching activity...")
		return panelBorderStyle.Width(w - 2).Height(contentH).Render(content)
	}

	if len(lines) == 0 {
		content := dimStyle.Render("No recent activity found for user '" + m.username + "'")
		return panelBorderStyle.Width(w - 2).Height(contentH).Render(content)
	}

	visible := contentH
	scrollable := len(lines) > visible
	if scrollable {
		visible-- // reserve a row for the scroll indicator
	}

	start, end := scrollWindow(m.cursor, len(lines), visible)

	var out []string
	for i := start; i < end; i++ {
		out = append(out, renderFeedLine(lines[i], i == m.cursor, contentW))
	}

	if scrollable {
		out = append(out, dimStyle.Render(scrollIndicator(start+1, end, len(lines))))
	}

	return panelBorderStyle.
		Width(w - 2).
		Height(contentH).
		Render(strings.Join(out, "\n"))
}

func (m Model) renderStatusBar(w int) string {
	if m.errText != "" {
		return errorStyle.Render("Error: " + m.errText + "  (r to retry)")
	}

	help := "j/k move  r refresh  f filter  q quit"
	status := fmt.Sprintf("filter: %s  %s", m.filterLabel(), help)
	return statusBarStyle.Render(truncate(status, w))
}

// renderFeedLine colors one activity line by kind, highlighting the
// cursor row.
func renderFeedLine(line activity.Line, selected bool, maxW int) string {
	text := truncate(line.Text, maxW)
	if selected {
		return cursorStyle.Render(text)
	}
	if style, ok := kindStyles[line.Kind]; ok {
		return style.Render(text)
	}
	return dimStyle.Render(text)
}

// scrollWindow returns the [start, end) slice of the feed that keeps
// the cursor visible in a window of the given height.
func scrollWindow(cursor, total, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	if total <= visible {
		return 0, total
	}

	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start > total-visible {
		start = total - visible
	}
	return start, start + visible
}

func scrollIndicator(start, end, total int) string {
	return fmt.Sprintf("[%d-%d/%d]", start, end, total)
}

func truncate(s string, maxW int) string {
	if len(s) <= maxW || maxW <= 3 {
		return s
	}
	return s[:maxW-3] + "..."
}
