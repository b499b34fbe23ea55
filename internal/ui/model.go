package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/dirpanes/internal/theme"
	"github.com/atomicstack/dirpanes/internal/ui/command"
	"github.com/atomicstack/dirpanes/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeEdit
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Lister synchronously returns the regular files directly inside a path.
// It never fails; unreadable paths yield an empty result.
type Lister interface {
	List(path string) []string
}

// Searcher asynchronously resolves a query to ranked directory paths.
type Searcher interface {
	Search(query string) ([]string, error)
}

// Model implements the Bubble Tea model for the dual-pane browser.
type Model struct {
	mode    Mode
	left    state.Pane
	right   state.Pane
	session *state.Session

	lister   Lister
	searcher Searcher
	bus      *command.Bus

	searchSeq int
	tick      time.Duration

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	promptCursor      cursor.Model
	promptCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with both panes pointing at home and
// nothing loaded.
func NewModel(home string, lister Lister, searcher Searcher, width, height int, tick time.Duration, showFooter bool) *Model {
	m := &Model{
		mode:       ModeBrowse,
		left:       state.NewPane(home),
		right:      state.NewPane(home),
		lister:     lister,
		searcher:   searcher,
		bus:        command.New(),
		tick:       tick,
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Prompt != nil {
		c.TextStyle = styles.Prompt.Copy()
	}
	c.SetChar(" ")
	m.promptCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	if cmd := m.promptCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updatePromptCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleSearchResultMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.promptCursorDirty {
		m.promptCursorDirty = false
		m.promptCursor.Blink = false
		if cmd := m.promptCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) pane(target state.Target) *state.Pane {
	if target == state.Right {
		return &m.right
	}
	return &m.left
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}
