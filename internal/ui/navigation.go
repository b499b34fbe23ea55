package ui

import (
	"github.com/atomicstack/dirpanes/internal/logging/events"
	"github.com/atomicstack/dirpanes/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeBrowse:
		return m.handleBrowseKey(keyMsg)
	case ModeEdit:
		return m.handleEditKey(keyMsg)
	}
	return nil
}

// handleBrowseKey implements the browse-mode transitions: q quits, H and L
// open an edit session for the left or right pane, everything else is a
// no-op.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "H":
		m.enterEdit(state.Left)
	case "L":
		m.enterEdit(state.Right)
	}
	return nil
}

// handleEditKey implements the edit-mode transitions. Tab is reserved for a
// future "accept suggestion" action and currently does nothing; unlisted
// keys are no-ops.
func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.cancelEdit()
		return nil
	case tea.KeyUp:
		if m.session.MoveCursorUp() {
			events.Edit.Cursor(m.session.Target.String(), m.session.Cursor)
		}
		return nil
	case tea.KeyDown:
		if m.session.MoveCursorDown() {
			events.Edit.Cursor(m.session.Target.String(), m.session.Cursor)
		}
		return nil
	case tea.KeyTab:
		return nil
	case tea.KeyEnter:
		m.commitEdit()
		return nil
	case tea.KeyBackspace:
		if !m.session.Backspace() {
			return nil
		}
		m.promptCursorDirty = true
		events.Edit.Backspace(m.session.Target.String(), m.session.Buffer)
		return m.searchCmd()
	default:
		return m.handleTextInput(msg)
	}
}

// enterEdit opens an edit session for the target pane with an empty buffer
// (the old path is not pre-seeded) and no suggestions.
func (m *Model) enterEdit(target state.Target) {
	m.session = state.NewSession(target)
	m.mode = ModeEdit
	m.promptCursorDirty = true
	events.Edit.Enter(target.String())
}

// cancelEdit discards the session; the target pane keeps its previous path
// and entries.
func (m *Model) cancelEdit() {
	if m.session != nil {
		events.Edit.Cancel(m.session.Target.String())
	}
	m.session = nil
	m.mode = ModeBrowse
}

// commitEdit confirms the typed path: the target pane adopts it, the
// directory is listed synchronously, and the session is discarded. The path
// is not validated; an unreadable path simply commits with an empty listing.
func (m *Model) commitEdit() {
	session := m.session
	if session == nil {
		return
	}
	pane := m.pane(session.Target)
	path := session.Buffer
	entries := m.lister.List(path)
	pane.Commit(path, entries)
	events.Edit.Commit(session.Target.String(), path, len(entries))
	events.Pane.Loaded(session.Target.String(), path, len(entries))
	m.session = nil
	m.mode = ModeBrowse
}
