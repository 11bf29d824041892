package entrylist

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amethyst/enscribe/internal/keys"
	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/query"
	"github.com/amethyst/enscribe/internal/store"
	"github.com/amethyst/enscribe/internal/theme"
)

// EntriesLoadedMsg is sent when entries have been loaded from the store.
type EntriesLoadedMsg struct {
	Kind    model.Kind
	Entries []model.Entry
	Err     error
}

// SelectedEntryMsg is sent when the user opens an entry.
type SelectedEntryMsg struct {
	Entry model.Entry
}

// EditEntryMsg is sent when the user asks to edit the focused entry.
type EditEntryMsg struct {
	Entry model.Entry
}

// DeleteEntryMsg is sent when the user asks to delete the focused entry.
type DeleteEntryMsg struct {
	Kind model.Kind
	ID   int64
}

// Model is the main entry list view: one page per entry kind, with
// search, category filtering, sort cycling, and list or grid rendering.
type Model struct {
	store  store.Store
	keys   *keys.KeyMap
	styles theme.Styles

	kind    model.Kind
	entries []model.Entry
	visible []model.Entry
	cursor  int

	sortIndex int

	searchMode  bool
	searchInput textinput.Model
	searchQuery string

	filterMode   bool
	filterCursor int
	categories   []string
	selectedCats map[string]bool

	gridView     bool
	showCategory bool
	showDateTime bool

	width  int
	height int
}

// New creates an entry list model showing the given kind first.
func New(s store.Store, k *keys.KeyMap, st theme.Styles, width, height int) Model {
	si := textinput.New()
	si.Placeholder = "search entries..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		store:        s,
		keys:         k,
		styles:       st,
		kind:         model.KindNote,
		searchInput:  si,
		selectedCats: make(map[string]bool),
		gridView:     true,
		showCategory: true,
		showDateTime: true,
		width:        width,
		height:       height,
	}
}

// Init returns a command that loads the initial page.
func (m Model) Init() tea.Cmd {
	return m.LoadEntries()
}

// Kind returns the active entry kind page.
func (m Model) Kind() model.Kind {
	return m.kind
}

// SortLabel returns the active sort order's display name.
func (m Model) SortLabel() string {
	return query.Orders[m.sortIndex].Label()
}

// SetStyles swaps the theme-derived styles after a theme change.
func (m *Model) SetStyles(st theme.Styles) {
	m.styles = st
}

// ApplySettings updates the display options from the settings row.
func (m *Model) ApplySettings(s model.Settings) {
	m.gridView = s.IsGridView
	m.showCategory = s.ShowCategory
	m.showDateTime = s.ShowDateTime
}

// InputActive reports whether a text input or overlay owns the
// keyboard, so the parent must not intercept plain keys.
func (m Model) InputActive() bool {
	return m.searchMode || m.filterMode
}

// SelectedEntry returns the focused entry, if any.
func (m Model) SelectedEntry() (model.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return model.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// Update handles messages for the entry list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntriesLoadedMsg:
		if msg.Kind != m.kind || msg.Err != nil {
			return m, nil
		}
		m.entries = msg.Entries
		m.categories = query.Categories(msg.Entries)
		m.applyPipeline()
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		if m.filterMode {
			return m.handleFilterKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleSearchKeys processes key input while the search bar is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchQuery = m.searchInput.Value()
		m.applyPipeline()
		return m, nil

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.searchQuery = ""
		m.applyPipeline()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.searchQuery = m.searchInput.Value()
	m.applyPipeline()
	return m, cmd
}

// handleFilterKeys processes key input in the category filter overlay.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.filterCursor < len(m.categories)-1 {
			m.filterCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.filterCursor > 0 {
			m.filterCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.filterCursor < len(m.categories) {
			cat := m.categories[m.filterCursor]
			if m.selectedCats[cat] {
				delete(m.selectedCats, cat)
			} else {
				m.selectedCats[cat] = true
			}
			m.applyPipeline()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.FilterCats):
		m.filterMode = false
		return m, nil
	}
	return m, nil
}

// handleNormalKeys processes key input in normal browsing mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextKind):
		return m.switchKind(1)

	case key.Matches(msg, m.keys.PrevKind):
		return m.switchKind(-1)

	case key.Matches(msg, m.keys.Select):
		if e, ok := m.SelectedEntry(); ok {
			return m, func() tea.Msg { return SelectedEntryMsg{Entry: e} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if e, ok := m.SelectedEntry(); ok {
			return m, func() tea.Msg { return EditEntryMsg{Entry: e} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.SelectedEntry(); ok {
			return m, func() tea.Msg { return DeleteEntryMsg{Kind: e.Kind, ID: e.ID} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.FilterCats):
		m.filterMode = true
		m.filterCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIndex = (m.sortIndex + 1) % len(query.Orders)
		m.applyPipeline()
		return m, nil
	}

	return m, nil
}

// switchKind moves to the next or previous kind page and reloads.
func (m Model) switchKind(step int) (Model, tea.Cmd) {
	idx := 0
	for i, k := range model.Kinds {
		if k == m.kind {
			idx = i
			break
		}
	}
	idx = (idx + step + len(model.Kinds)) % len(model.Kinds)
	m.kind = model.Kinds[idx]
	m.cursor = 0
	m.selectedCats = make(map[string]bool)
	return m, m.LoadEntries()
}

// applyPipeline recomputes the visible entries from the loaded set and
// the current search/filter/sort state.
func (m *Model) applyPipeline() {
	filtered := query.Filter(m.entries, m.searchQuery, m.selectedCats)
	m.visible = query.Sort(filtered, query.Orders[m.sortIndex])
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// LoadEntries returns a tea.Cmd that queries the store for the active
// kind. The tasks page shows only pending tasks, as in the home view.
func (m Model) LoadEntries() tea.Cmd {
	kind := m.kind
	s := m.store
	return func() tea.Msg {
		ctx := context.Background()
		var entries []model.Entry
		var err error
		if kind == model.KindTask {
			entries, err = s.GetPendingTasks(ctx)
		} else {
			entries, err = s.GetEntries(ctx, kind)
		}
		return EntriesLoadedMsg{Kind: kind, Entries: entries, Err: err}
	}
}

// View renders the entry list view.
func (m Model) View() string {
	if m.filterMode {
		return m.renderFilterOverlay()
	}

	var sections []string
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Padding(0, 1).
			Render(m.searchInput.View())
		sections = append(sections, searchBar)
	}

	if len(m.visible) == 0 {
		sections = append(sections, m.renderEmptyState())
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.gridView {
		sections = append(sections, m.renderGrid())
	} else {
		sections = append(sections, m.renderList())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderEmptyState shows guidance text when no entries are visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(m.styles.Muted.GetForeground())

	if m.searchQuery != "" || len(m.selectedCats) > 0 {
		return style.Render("No matching entries.\nTry adjusting your search or filters.")
	}
	return style.Render("Nothing here yet.\n\nPress n to create a " + m.kind.Label() + ".")
}

// renderFilterOverlay draws the category selection overlay.
func (m Model) renderFilterOverlay() string {
	title := m.styles.Accent.Render("Filter by category")

	if len(m.categories) == 0 {
		body := m.styles.Muted.Render("No categories yet.")
		return m.styles.Panel.Width(m.width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", body))
	}

	lines := make([]string, 0, len(m.categories)+2)
	lines = append(lines, title, "")
	for i, cat := range m.categories {
		marker := "[ ]"
		if m.selectedCats[cat] {
			marker = "[x]"
		}
		line := marker + " " + cat
		if i == m.filterCursor {
			line = m.styles.Accent.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", m.styles.Help.Render("enter toggle · esc close"))

	return m.styles.Panel.Width(m.width - 4).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 4
}
