package entrydetail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amethyst/enscribe/internal/keys"
	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// EditMsg asks the parent to open the editor for the current entry.
type EditMsg struct {
	Entry model.Entry
}

// DeleteMsg asks the parent to delete the current entry.
type DeleteMsg struct {
	Kind model.Kind
	ID   int64
}

// Model is the entry detail view component.
type Model struct {
	entry    *model.Entry
	viewport viewport.Model
	keys     *keys.KeyMap
	styles   theme.Styles
	width    int
	height   int
}

// New creates a new detail view model.
func New(km *keys.KeyMap, st theme.Styles, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport: vp,
		keys:     km,
		styles:   st,
		width:    width,
		height:   height,
	}
}

// SetStyles swaps the theme-derived styles after a theme change.
func (m *Model) SetStyles(st theme.Styles) {
	m.styles = st
	if m.entry != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

// SetEntry updates the entry being displayed and re-renders the content.
func (m *Model) SetEntry(e model.Entry) {
	m.entry = &e
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Entry returns the currently displayed entry, if any.
func (m Model) Entry() *model.Entry {
	return m.entry
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return BackMsg{} }

		case key.Matches(msg, m.keys.Edit):
			if m.entry != nil {
				e := *m.entry
				return m, func() tea.Msg { return EditMsg{Entry: e} }
			}

		case key.Matches(msg, m.keys.Delete):
			if m.entry != nil {
				kind, id := m.entry.Kind, m.entry.ID
				return m, func() tea.Msg { return DeleteMsg{Kind: kind, ID: id} }
			}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.entry == nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(m.styles.Muted.Render("No entry selected"))
	}
	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.entry == nil {
		return ""
	}

	e := m.entry
	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true)
	sections = append(sections, titleStyle.Render(e.Title))

	// Badges line: kind + category + task/prayer state
	badges := []string{m.styles.Accent.Render(strings.ToUpper(e.Kind.Label()))}
	if e.Category != "" {
		badges = append(badges, m.styles.CategoryBadge.Render(e.Category))
	}
	switch e.Kind {
	case model.KindTask:
		state := "PENDING"
		if e.Task.Completed {
			state = "DONE"
		}
		badges = append(badges, m.styles.Muted.Render(state))
	case model.KindPrayer:
		badges = append(badges, m.styles.Muted.Render(
			fmt.Sprintf("PRIORITY %d", e.Prayer.Priority),
		))
	}
	sections = append(sections, strings.Join(badges, "  "))
	sections = append(sections, "")

	sections = append(sections, m.metaLine("Created:", formatMillis(e.CreatedAt)))
	sections = append(sections, m.metaLine("Modified:", formatMillis(e.ModifiedAt)))
	if e.Reminder != nil {
		state := "off"
		if e.Reminder.Active {
			state = "on"
		}
		sections = append(sections, m.metaLine("Reminder:", fmt.Sprintf(
			"%s (%s, %s)",
			formatMillis(e.Reminder.TimeMillis),
			strings.ToLower(string(e.Reminder.Repeat)),
			state,
		)))
	}

	separator := m.styles.Muted.Render(strings.Repeat("─", min(m.width-4, 80)))
	sections = append(sections, "", separator, "")

	sections = append(sections, m.bodySections()...)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// bodySections renders the variant-specific content block.
func (m Model) bodySections() []string {
	e := m.entry
	headerStyle := lipgloss.NewStyle().Bold(true)

	switch e.Kind {
	case model.KindTask:
		sections := []string{headerStyle.Render(
			fmt.Sprintf("Checklist (%d)", len(e.Task.Checklist)),
		), ""}
		if len(e.Task.Checklist) == 0 {
			sections = append(sections, m.styles.Muted.Italic(true).Render("No items"))
			return sections
		}
		for _, item := range e.Task.Checklist {
			sections = append(sections, "• "+item)
		}
		return sections

	default:
		body := e.Body()
		if body == "" {
			body = m.styles.Muted.Italic(true).Render("No content")
		}
		return []string{headerStyle.Render("Content"), "", body}
	}
}

func (m Model) metaLine(label, value string) string {
	return fmt.Sprintf("%-10s %s", m.styles.Muted.Render(label), value)
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.entry != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
