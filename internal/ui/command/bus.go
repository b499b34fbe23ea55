// Package command wraps asynchronous directory-search invocations into
// Bubble Tea commands with trace logging.
package command

import (
	"github.com/atomicstack/dirpanes/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Runner executes a directory search for a query.
type Runner func(query string) ([]string, error)

// Request encapsulates one search invocation. Seq is a monotonically
// increasing identifier assigned per keystroke; it travels with the result
// so completion order stays observable, but nothing cancels or discards
// in-flight requests when a newer one is issued.
type Request struct {
	Seq   int
	Query string
	Run   Runner
}

// Result carries a completed search back into the update loop.
type Result struct {
	Seq   int
	Query string
	Paths []string
	Err   error
}

// Bus coordinates the execution of search requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a search request into a Bubble Tea command while emitting
// trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Search.Queue(req.Seq, req.Query)
	return func() tea.Msg {
		if req.Run == nil {
			return nil
		}
		paths, err := req.Run(req.Query)
		if err != nil {
			events.Search.Error(req.Seq, err)
			return Result{Seq: req.Seq, Query: req.Query, Err: err}
		}
		events.Search.Result(req.Seq, len(paths))
		return Result{Seq: req.Seq, Query: req.Query, Paths: paths}
	}
}
