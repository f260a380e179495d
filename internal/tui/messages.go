package tui

import "github.com/smymedia/mediavault/internal/lookup"

// searchDebounceMsg fires when the search quiet period elapses. Seq is the
// token captured when the timer was scheduled: if the user has typed again
// since, the model's counter has moved on and the message is ignored.
type searchDebounceMsg struct {
	Seq int
}

// lookupResultMsg delivers external search results. Seq is the request token
// captured at dispatch; results from superseded requests are dropped on
// arrival instead of being cancelled in flight.
type lookupResultMsg struct {
	Seq     int
	Query   string
	Results []lookup.Result
	Err     error
}

// statusMsg surfaces a transient status-line message.
type statusMsg struct {
	Text    string
	IsError bool
}

// clearStatusMsg blanks the status line after its display window.
type clearStatusMsg struct{}
