// Package tui implements the interactive activity view.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nixlim/gh-activity/internal/activity"
)

// FetchFunc re-fetches and formats the user's activity.
type FetchFunc func(ctx context.Context) ([]activity.Line, error)

// filterCycle is the order the f key steps through. The empty token is
// the match-all filter.
var filterCycle = []string{"", "push", "issues", "pull-request", "watch", "fork", "create", "delete", "release", "public"}

type linesMsg []activity.Line

type fetchErrMsg struct {
	err error
}

type Model struct {
	username string
	width    int
	height   int
	keys     KeyMap
	quitting bool

	lines     []activity.Line
	seeded    bool
	filterIdx int
	cursor    int

	loading bool
	errText string

	fetch FetchFunc
}

func NewModel(username string, opts ...ModelOption) Model {
	m := Model{
		username: username,
		keys:     DefaultKeyMap(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

type ModelOption func(*Model)

// WithLines seeds the model with already-fetched activity, so the view
// opens without a fetch.
func WithLines(lines []activity.Line) ModelOption {
	return func(m *Model) {
		m.lines = lines
		m.seeded = true
	}
}

// WithFetcher enables the refresh key.
func WithFetcher(fn FetchFunc) ModelOption {
	return func(m *Model) { m.fetch = fn }
}

func (m Model) Init() tea.Cmd {
	if !m.seeded && m.fetch != nil {
		return m.fetchCmd()
	}
	return nil
}

func (m Model) fetchCmd() tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		lines, err := fetch(context.Background())
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return linesMsg(lines)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case linesMsg:
		m.lines = msg
		m.loading = false
		m.errText = ""
		m.cursor = 0
		return m, nil

	case fetchErrMsg:
		m.loading = false
		m.errText = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleLines())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.visibleLines()); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.fetch != nil && !m.loading {
			m.loading = true
			m.errText = ""
			return m, m.fetchCmd()
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
		m.cursor = 0
		return m, nil
	}

	return m, nil
}

// currentFilter returns the active kind filter.
func (m Model) currentFilter() activity.Filter {
	f, err := activity.ParseFilter(filterCycle[m.filterIdx])
	if err != nil {
		return activity.NewFilter()
	}
	return f
}

// filterLabel names the active filter for the status bar.
func (m Model) filterLabel() string {
	token := filterCycle[m.filterIdx]
	if token == "" {
		return "all"
	}
	return token
}

// visibleLines returns the activity lines passing the active filter.
func (m Model) visibleLines() []activity.Line {
	f := m.currentFilter()
	return f.Apply(m.lines)
}
