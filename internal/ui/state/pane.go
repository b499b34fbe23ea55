// Package state holds the pane and edit-session state types that back the
// UI model, kept free of Bubble Tea so they can be tested in isolation.
package state

// Target identifies which pane an edit session is aimed at.
type Target int

const (
	Left Target = iota
	Right
)

// String returns the lowercase pane name, used in trace payloads.
func (t Target) String() string {
	if t == Right {
		return "right"
	}
	return "left"
}

// Pane is one of the two directory views. Entries stays nil until the first
// committed path edit; after that it is always non-nil, possibly empty.
// Cursor is -1 while no entry is selected.
type Pane struct {
	Path    string
	Entries []string
	Cursor  int
}

// NewPane creates a pane pointing at path with nothing loaded.
func NewPane(path string) Pane {
	return Pane{Path: path, Cursor: -1}
}

// Commit confirms a new path together with its freshly listed entries.
// Entries must be non-nil; the lister guarantees that.
func (p *Pane) Commit(path string, entries []string) {
	p.Path = path
	p.Entries = entries
	if p.Cursor >= len(entries) {
		p.Cursor = -1
	}
}

// Loaded reports whether the pane has listed its directory at least once.
func (p *Pane) Loaded() bool {
	return p.Entries != nil
}

// Selected returns the entry under the pane cursor, clamping out-of-range
// cursors to "nothing selected".
func (p *Pane) Selected() (string, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Entries) {
		return "", false
	}
	return p.Entries[p.Cursor], true
}
