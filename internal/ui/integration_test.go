package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/dirpanes/internal/fs"
	"github.com/atomicstack/dirpanes/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

// recordingSearcher wraps a real finder so tests can assert one query was
// issued per keystroke.
type recordingSearcher struct {
	inner   Searcher
	queries []string
}

func (r *recordingSearcher) Search(query string) ([]string, error) {
	r.queries = append(r.queries, query)
	return r.inner.Search(query)
}

func TestEditCommitEndToEnd(t *testing.T) {
	root := t.TempDir()
	searcher := &recordingSearcher{inner: search.NewFinder(root, 3)}
	model := newTestModel(fs.NewLister(), searcher)
	harness := NewHarness(model)

	harness.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	harness.Send(keyRunes("H"))
	for _, key := range []string{"a", "b", "c"} {
		harness.Send(keyRunes(key))
	}

	want := []string{"a", "ab", "abc"}
	if len(searcher.queries) != len(want) {
		t.Fatalf("expected queries %v, got %v", want, searcher.queries)
	}
	for i, q := range want {
		if searcher.queries[i] != q {
			t.Fatalf("query %d: expected %q, got %q", i, q, searcher.queries[i])
		}
	}
	// No directory named "abc" is reachable, so every walk failed and the
	// suggestion list never materialised.
	if harness.Model().session.Suggestions != nil {
		t.Fatalf("expected no suggestions after failed searches, got %v", harness.Model().session.Suggestions)
	}

	harness.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m := harness.Model()
	if m.mode != ModeBrowse {
		t.Fatalf("expected browse mode after commit")
	}
	if m.left.Path != "abc" {
		t.Fatalf("expected committed path abc, got %q", m.left.Path)
	}
	if m.left.Entries == nil || len(m.left.Entries) != 0 {
		t.Fatalf("expected empty non-nil listing, got %#v", m.left.Entries)
	}
	if view := harness.View(); !strings.Contains(view, "abc") {
		t.Fatalf("expected committed path in view, view =\n%s", view)
	}
}

func TestEditCommitWithRealDirectory(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "docs")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(target, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	searcher := &recordingSearcher{inner: search.NewFinder(root, 3)}
	model := newTestModel(fs.NewLister(), searcher)
	harness := NewHarness(model)

	harness.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	harness.Send(keyRunes("L"))
	// Seed all but the last rune directly so only the final keystroke issues
	// a real walk; per-keystroke querying is covered elsewhere.
	harness.Model().session.Append(target[:len(target)-1])
	harness.Send(keyRunes(target[len(target)-1:]))

	m := harness.Model()
	if len(searcher.queries) != 1 || searcher.queries[0] != target {
		t.Fatalf("expected a single query for %q, got %v", target, searcher.queries)
	}
	if m.session.Suggestions == nil || len(m.session.Suggestions) == 0 {
		t.Fatalf("expected suggestions for a walkable path, got %v", m.session.Suggestions)
	}
	if m.session.Suggestions[0] != target {
		t.Fatalf("expected %s ranked first, got %v", target, m.session.Suggestions)
	}

	harness.Send(tea.KeyMsg{Type: tea.KeyEnter})

	m = harness.Model()
	if m.right.Path != target {
		t.Fatalf("expected committed path %s, got %q", target, m.right.Path)
	}
	if len(m.right.Entries) != 1 || filepath.Base(m.right.Entries[0]) != "readme.md" {
		t.Fatalf("expected readme.md listed, got %v", m.right.Entries)
	}
	if view := harness.View(); !strings.Contains(view, "readme.md") {
		t.Fatalf("expected listing in view, view =\n%s", view)
	}
}

func TestSuggestionCursorKeysEndToEnd(t *testing.T) {
	model := newTestModel(nil, nil)
	harness := NewHarness(model)

	harness.Send(keyRunes("H"))
	for i := 0; i < 3; i++ {
		harness.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := harness.Model().session.Cursor; got != 2 {
		t.Fatalf("expected cursor 2 after three downs, got %d", got)
	}
	for i := 0; i < 3; i++ {
		harness.Send(tea.KeyMsg{Type: tea.KeyUp})
	}
	if got := harness.Model().session.Cursor; got != -1 {
		t.Fatalf("expected absent cursor, got %d", got)
	}
	// Up from absent must stay absent without panicking.
	harness.Send(tea.KeyMsg{Type: tea.KeyUp})
	if got := harness.Model().session.Cursor; got != -1 {
		t.Fatalf("expected absent cursor to stay absent, got %d", got)
	}
}
