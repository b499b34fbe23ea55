package ui

import (
	"unicode"

	"github.com/atomicstack/dirpanes/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updatePromptCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.promptCursor, cmd = m.promptCursor.Update(msg)
	return cmd
}

// handleTextInput appends printable input to the edit buffer and issues a
// search for the new contents. Control and alt-modified keys fall through
// as no-ops.
func (m *Model) handleTextInput(msg tea.KeyMsg) tea.Cmd {
	if m.session == nil {
		return nil
	}
	var text string
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		if len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		text = string(msg.Runes)
	case tea.KeySpace:
		text = " "
	default:
		return nil
	}
	m.session.Append(text)
	m.promptCursorDirty = true
	events.Edit.Append(m.session.Target.String(), m.session.Buffer)
	return m.searchCmd()
}

// editPrompt renders the edit-mode input line: prompt glyph, the buffer
// typed so far, and a blinking caret pinned to the end of the buffer.
func (m *Model) editPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.promptCursor.Style = styles.Cursor.Copy()
	}
	if styles.Prompt != nil {
		m.promptCursor.TextStyle = styles.Prompt.Copy()
	} else {
		m.promptCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.PromptLabel != nil {
		prompt = styles.PromptLabel.Render(prompt)
	}
	if m.session == nil || m.session.Buffer == "" {
		placeholder := "(type a directory path)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.PromptPlaceholder != nil {
			m.promptCursor.TextStyle = styles.PromptPlaceholder.Copy()
		}
		caret := m.renderPromptCursor(caretRune)
		return prompt + caret + render(styles.PromptPlaceholder, rest)
	}
	text := render(styles.Prompt, m.session.Buffer)
	caret := m.renderPromptCursor(" ")
	return prompt + text + caret
}

func (m *Model) renderPromptCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.promptCursor.SetChar(char)

	base := m.promptCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.promptCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
