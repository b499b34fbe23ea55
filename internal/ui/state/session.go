package state

// NoCursor marks an absent suggestion cursor.
const NoCursor = -1

// Session is the transient edit-mode state: the pane being retargeted, the
// typed buffer, and the live suggestion list. It exists only while the UI is
// in edit mode and is discarded on commit or cancel.
//
// Cursor deliberately has no upper bound: MoveCursorDown increments past the
// end of Suggestions, and the list itself can shrink underneath an in-range
// cursor when a later search reply lands. Consumers must go through
// Highlighted, which treats out-of-range values as "no highlight", instead
// of indexing Suggestions directly.
type Session struct {
	Target      Target
	Buffer      string
	Suggestions []string
	Cursor      int

	// AppliedSeq records the sequence number of the last search reply merged
	// into Suggestions. Replies are merged in completion order with no
	// staleness check, so AppliedSeq can decrease; it exists to make that
	// visible.
	AppliedSeq int
}

// NewSession starts an edit session for the given pane with an empty buffer
// and no suggestions.
func NewSession(target Target) *Session {
	return &Session{Target: target, Cursor: NoCursor}
}

// Append adds text to the end of the input buffer.
func (s *Session) Append(text string) {
	s.Buffer += text
}

// Backspace removes the last rune of the input buffer. It reports whether
// the buffer changed.
func (s *Session) Backspace() bool {
	runes := []rune(s.Buffer)
	if len(runes) == 0 {
		return false
	}
	s.Buffer = string(runes[:len(runes)-1])
	return true
}

// MoveCursorUp decreases the suggestion cursor: Some(v>0) becomes Some(v-1),
// Some(0) becomes None, None stays None. It reports whether anything moved.
func (s *Session) MoveCursorUp() bool {
	switch {
	case s.Cursor > 0:
		s.Cursor--
		return true
	case s.Cursor == 0:
		s.Cursor = NoCursor
		return true
	default:
		return false
	}
}

// MoveCursorDown increases the suggestion cursor: None becomes Some(0),
// Some(v) becomes Some(v+1) with no upper clamp.
func (s *Session) MoveCursorDown() bool {
	if s.Cursor == NoCursor {
		s.Cursor = 0
		return true
	}
	s.Cursor++
	return true
}

// ApplySuggestions merges a successful search reply. Replies land in
// completion order; seq is recorded but never compared, so an older reply
// overwrites a newer one (last-completed-wins).
func (s *Session) ApplySuggestions(paths []string, seq int) {
	s.Suggestions = paths
	s.AppliedSeq = seq
}

// Highlighted returns the suggestion under the cursor. Out-of-range cursors
// (including ones that ran past the end via MoveCursorDown, or were
// stranded by a shrinking suggestion list) report no highlight.
func (s *Session) Highlighted() (string, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Suggestions) {
		return "", false
	}
	return s.Suggestions[s.Cursor], true
}
