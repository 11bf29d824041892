package entrylist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/amethyst/enscribe/internal/model"
)

// gridColumns is the number of cards per row in grid view.
const gridColumns = 2

// renderList draws the visible entries as full-width rows.
func (m Model) renderList() string {
	lines := make([]string, 0, len(m.visible))
	for i, e := range m.visible {
		lines = append(lines, m.renderRow(e, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderGrid draws the visible entries as cards, gridColumns per row.
func (m Model) renderGrid() string {
	cardWidth := m.width/gridColumns - 2
	if cardWidth < 16 {
		return m.renderList()
	}

	var rows []string
	for i := 0; i < len(m.visible); i += gridColumns {
		var cards []string
		for j := i; j < i+gridColumns && j < len(m.visible); j++ {
			cards = append(cards, m.renderCard(m.visible[j], j == m.cursor, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderRow draws one entry as a single list line.
func (m Model) renderRow(e model.Entry, selected bool) string {
	prefix := kindGlyph(e)

	parts := []string{prefix, e.Title}
	if m.showCategory && e.Category != "" {
		parts = append(parts, m.styles.CategoryBadge.Render(e.Category))
	}
	if e.Reminder != nil && e.Reminder.Active {
		parts = append(parts, "⏰")
	}
	if m.showDateTime {
		parts = append(parts, m.styles.Muted.Render(relativeTime(e.ModifiedAt)))
	}

	line := strings.Join(parts, " ")
	if selected {
		return m.styles.Accent.Render("> ") + m.styles.Accent.Render(line)
	}
	return "  " + line
}

// renderCard draws one entry as a bordered card for grid view.
func (m Model) renderCard(e model.Entry, selected bool, width int) string {
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}

	var lines []string
	lines = append(lines, kindGlyph(e)+" "+truncate(e.Title, width-4))

	if body := cardPreview(e); body != "" {
		lines = append(lines, m.styles.Muted.Render(truncate(body, width-4)))
	}

	var footer []string
	if m.showCategory && e.Category != "" {
		footer = append(footer, m.styles.CategoryBadge.Render(e.Category))
	}
	if m.showDateTime {
		footer = append(footer, m.styles.Muted.Render(relativeTime(e.ModifiedAt)))
	}
	if len(footer) > 0 {
		lines = append(lines, strings.Join(footer, " "))
	}

	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// cardPreview returns the one-line body summary for a card.
func cardPreview(e model.Entry) string {
	switch e.Kind {
	case model.KindTask:
		if e.Task == nil {
			return ""
		}
		return fmt.Sprintf("%d checklist items", len(e.Task.Checklist))
	case model.KindPrayer:
		if e.Prayer == nil {
			return ""
		}
		if e.Prayer.Priority > 0 {
			return fmt.Sprintf("P%d · %s", e.Prayer.Priority, firstLine(e.Prayer.Prayer))
		}
		return firstLine(e.Prayer.Prayer)
	default:
		return firstLine(e.Body())
	}
}

// kindGlyph returns the entry's kind marker. Tasks show their
// completion state instead of the kind symbol.
func kindGlyph(e model.Entry) string {
	switch e.Kind {
	case model.KindNote:
		return "✎"
	case model.KindTask:
		if e.Task != nil && e.Task.Completed {
			return "✓"
		}
		return "○"
	case model.KindVerse:
		return "❝"
	case model.KindPrayer:
		return "♥"
	default:
		return "•"
	}
}

// firstLine returns text up to the first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate shortens s to at most n runes, ellipsized.
func truncate(s string, n int) string {
	if n <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// relativeTime returns a human-friendly relative time string for an
// epoch-millisecond timestamp.
func relativeTime(millis int64) string {
	if millis == 0 {
		return ""
	}

	d := time.Since(time.UnixMilli(millis))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case d < 24*time.Hour:
		hrs := int(d.Hours())
		if hrs == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hrs)
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		weeks := int(d.Hours() / 24 / 7)
		if weeks == 1 {
			return "1w ago"
		}
		return fmt.Sprintf("%dw ago", weeks)
	}
}
