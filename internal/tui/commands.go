package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smymedia/mediavault/internal/lookup"
	"github.com/smymedia/mediavault/internal/search"
)

// searchDebounce is the quiet window before a keystroke triggers a view
// recomputation or an external lookup.
const searchDebounce = 300 * time.Millisecond

const statusDisplayTime = 3 * time.Second

// debounceCmd schedules the debounce timer for the given token. Only one
// timer per token value ever matters: the model bumps its counter on every
// keystroke, so earlier timers fire as stale no-ops.
func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebounceMsg{Seq: seq}
	})
}

// lookupCmd runs an external movie search off the event loop. The seq token
// travels with the result so stale responses can be discarded.
func lookupCmd(client *lookup.Client, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		resp, err := client.SearchMovies(ctx, query, 1)
		if err != nil {
			return lookupResultMsg{Seq: seq, Query: query, Err: err}
		}

		// Re-rank by title proximity: TMDB orders by popularity, which
		// buries near-exact title matches for short queries.
		titles := make([]string, len(resp.Results))
		for i, r := range resp.Results {
			titles[i] = r.Title
		}
		ranked := make([]lookup.Result, 0, len(resp.Results))
		for _, idx := range search.Rank(query, titles) {
			ranked = append(ranked, resp.Results[idx])
		}

		return lookupResultMsg{Seq: seq, Query: query, Results: ranked}
	}
}

// trendingCmd loads the discover view's default content.
func trendingCmd(client *lookup.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		resp, err := client.Trending(ctx, "week", 1)
		if err != nil {
			return lookupResultMsg{Seq: seq, Err: err}
		}
		return lookupResultMsg{Seq: seq, Results: resp.Results}
	}
}

// clearStatusCmd blanks the status line after the display window.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusDisplayTime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
