package ui

import (
	"time"

	"github.com/atomicstack/dirpanes/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTick = 250 * time.Millisecond

// tickMsg is the redraw heartbeat. Its handler changes no state; it exists
// so a frame is produced every interval even when no input arrives.
type tickMsg struct {
	at time.Time
}

func (m *Model) tickCmd() tea.Cmd {
	interval := m.tick
	if interval <= 0 {
		interval = defaultTick
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	return m.tickCmd()
}

// searchCmd issues a search for the session's current buffer. Every
// keystroke gets its own request and sequence number; in-flight requests
// are never cancelled or deduplicated.
func (m *Model) searchCmd() tea.Cmd {
	if m.session == nil || m.searcher == nil {
		return nil
	}
	m.searchSeq++
	return m.bus.Execute(command.Request{
		Seq:   m.searchSeq,
		Query: m.session.Buffer,
		Run:   m.searcher.Search,
	})
}

// handleSearchResultMsg merges a completed search into the edit session.
// Failures leave the existing suggestions untouched, and results are applied
// in completion order with no staleness check, so a slow stale reply can
// overwrite newer suggestions (last-completed-wins).
func (m *Model) handleSearchResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if m.session == nil {
		// Edit mode ended while the request was in flight.
		return nil
	}
	if result.Err != nil {
		return nil
	}
	m.session.ApplySuggestions(result.Paths, result.Seq)
	return nil
}
