package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nixlim/gh-activity/internal/activity"
	"github.com/nixlim/gh-activity/internal/config"
	"github.com/nixlim/gh-activity/internal/display"
	"github.com/nixlim/gh-activity/internal/github"
	"github.com/nixlim/gh-activity/internal/tui"
)

func main() {
	limitFlag := flag.Int("limit", 0, "maximum number of activity lines to show (overrides config)")
	filterFlag := flag.String("filter", "", "comma-separated event kinds to show (push,issues,pull-request,watch,fork,create,delete,release,public)")
	plainFlag := flag.Bool("plain", false, "disable colored output")
	interactiveFlag := flag.Bool("interactive", false, "browse activity in an interactive view")
	configFlag := flag.String("config", "", "path to config file (default ~/.config/gh-activity/config.toml)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	username := strings.TrimSpace(flag.Arg(0))
	if username == "" {
		fmt.Fprintln(os.Stderr, "Error: username cannot be empty")
		os.Exit(2)
	}

	var loadResult *config.LoadResult
	var err error
	if *configFlag != "" {
		loadResult, err = config.LoadFrom(*configFlag)
	} else {
		loadResult, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gh-activity: config error: %v\n", err)
		os.Exit(1)
	}
	cfg := loadResult.Config

	for _, w := range loadResult.Warnings {
		fmt.Fprintf(os.Stderr, "gh-activity: config warning: %s\n", w)
	}

	if *limitFlag > 0 {
		cfg.Display.Limit = *limitFlag
	}
	if *plainFlag {
		cfg.Display.Plain = true
	}

	filter, err := activity.ParseFilter(*filterFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gh-activity: %v\n", err)
		os.Exit(2)
	}

	client := github.NewClient(github.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   cfg.Timeout(),
	}, nil)

	fetch := func(ctx context.Context) ([]activity.Line, error) {
		events, err := client.FetchEvents(ctx, username)
		if err != nil {
			return nil, err
		}
		return filter.Apply(activity.FormatEvents(events)), nil
	}

	lines, err := fetch(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactiveFlag {
		model := tui.NewModel(username,
			tui.WithLines(lines),
			tui.WithFetcher(fetch),
		)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "gh-activity: %v\n", err)
			os.Exit(1)
		}
		return
	}

	renderer := display.NewRenderer(os.Stdout, cfg.Display.Limit, cfg.Display.Plain)
	if err := renderer.Render(username, lines); err != nil {
		fmt.Fprintf(os.Stderr, "gh-activity: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: gh-activity [flags] <username>")
	fmt.Fprintln(os.Stderr, "Example: gh-activity kamranahmedse")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
