package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/dirpanes/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const paneGap = "  "

type styledLine struct {
	text        string
	style       *lipgloss.Style
	prefixStyle *lipgloss.Style
	prefixLen   int
}

// View implements tea.Model. The layout is re-derived from scratch on every
// call; nothing about it is cached between frames.
func (m *Model) View() string {
	if m.mode == ModeEdit && m.session != nil {
		return m.viewEdit()
	}
	return m.viewBrowse()
}

// viewBrowse renders the two panes side by side, each with a path header
// above its file listing. Both listings are drawn; the reference behaviour
// of leaving the right pane's listing blank was asymmetric and is not kept.
func (m *Model) viewBrowse() string {
	colWidth := m.paneColumnWidth()
	left := m.renderPane(&m.left, colWidth)
	right := m.renderPane(&m.right, colWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, paneGap, right)

	sections := []string{body}
	if m.showFooter {
		footer := "H edit left  L edit right  q quit"
		if styles.Footer != nil {
			footer = styles.Footer.Render(footer)
		}
		sections = append(sections, "", footer)
	}
	return strings.Join(sections, "\n")
}

// paneColumnWidth returns the width of one pane column, or 0 when the
// terminal size is unknown (no truncation is applied in that case).
func (m *Model) paneColumnWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := (m.width - len(paneGap)) / 2
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) renderPane(p *state.Pane, width int) string {
	lines := make([]styledLine, 0, 2+len(p.Entries))
	lines = append(lines, styledLine{text: p.Path, style: styles.Header})
	switch {
	case !p.Loaded():
		lines = append(lines, styledLine{text: "(not loaded)", style: styles.Info})
	case len(p.Entries) == 0:
		lines = append(lines, styledLine{text: "(no files)", style: styles.Info})
	default:
		for i, entry := range p.Entries {
			lines = append(lines, m.buildItemLine(entry, i == p.Cursor))
		}
	}
	lines = limitHeight(lines, m.paneMaxLines())
	lines = applyWidth(lines, width)
	return renderLines(lines)
}

// buildItemLine prepares one listing row, highlighting the selected entry.
func (m *Model) buildItemLine(text string, selected bool) styledLine {
	indicator := "  "
	line := styledLine{text: indicator + text, prefixLen: len(indicator)}
	if selected {
		line.text = "» " + text
		line.style = styles.SelectedItem
		line.prefixStyle = styles.SelectedIndicator
	} else {
		line.style = styles.Item
		line.prefixStyle = styles.ItemIndicator
	}
	return line
}

// viewEdit renders the path prompt and the suggestion list, highlighting the
// entry under the suggestion cursor only while the cursor is in range. The
// cursor is allowed to run past the end of the list, so the range check here
// is the clamp the input handling deliberately omits.
func (m *Model) viewEdit() string {
	session := m.session
	header := fmt.Sprintf("edit %s path", session.Target.String())
	lines := []styledLine{
		{text: header, style: styles.Header},
		{},
		{text: m.editPrompt()},
		{},
	}
	switch {
	case session.Suggestions == nil:
		lines = append(lines, styledLine{text: "(type to search directories)", style: styles.Info})
	case len(session.Suggestions) == 0:
		lines = append(lines, styledLine{text: fmt.Sprintf("No matches for %q", session.Buffer), style: styles.Info})
	default:
		_, inRange := session.Highlighted()
		for i, suggestion := range session.Suggestions {
			lines = append(lines, m.buildItemLine(suggestion, inRange && i == session.Cursor))
		}
	}
	if m.showFooter {
		lines = append(lines,
			styledLine{},
			styledLine{text: "↑/↓ move  enter confirm  esc cancel", style: styles.Footer},
		)
	}
	lines = limitHeight(lines, m.height)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) paneMaxLines() int {
	if m.height <= 0 {
		return -1
	}
	used := 0
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 2 {
		return 2
	}
	return remain
}

func limitHeight(lines []styledLine, height int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: "…"}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: "…"})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if lipgloss.Width(text) > width {
			text = truncate.StringWithTail(text, uint(width-1), "…")
		}
		result[i] = styledLine{
			text:        text,
			style:       line.style,
			prefixStyle: line.prefixStyle,
			prefixLen:   line.prefixLen,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.prefixLen > 0 && line.prefixLen <= len(runes) {
			head := string(runes[:line.prefixLen])
			tail := string(runes[line.prefixLen:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}
