package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amethyst/enscribe/internal/keys"
	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/settings"
	"github.com/amethyst/enscribe/internal/store"
	"github.com/amethyst/enscribe/internal/theme"
	"github.com/amethyst/enscribe/internal/ui"
	"github.com/amethyst/enscribe/internal/ui/entrydetail"
	"github.com/amethyst/enscribe/internal/ui/entryform"
	"github.com/amethyst/enscribe/internal/ui/entrylist"
	"github.com/amethyst/enscribe/internal/ui/helpview"
	"github.com/amethyst/enscribe/internal/ui/settingsview"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewForm
	ViewSettings
	ViewHelp
)

// settingsChangedMsg carries a settings value published by the cell.
type settingsChangedMsg struct {
	settings model.Settings
}

// Model is the root Bubble Tea model that manages view routing,
// layout, theming, and access to the persistence layer.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	cell         *settings.Cell
	keys         *keys.KeyMap
	styles       theme.Styles
	current      model.Settings

	list         entrylist.Model
	detail       entrydetail.Model
	form         entryform.Model
	settingsView settingsview.Model
	helpView     helpview.Model

	updates   <-chan model.Settings
	cancelSub func()

	ready     bool
	statusMsg string
}

// New creates a new root application model with the given store.
func New(s store.Store, cell *settings.Cell, backupDir, backupName string) Model {
	km := keys.DefaultKeyMap()
	current := model.DefaultSettings()
	st := theme.NewStyles(theme.ByName(current.ThemeName))
	updates, cancel := cell.Subscribe()

	m := Model{
		currentView:  ViewList,
		store:        s,
		cell:         cell,
		keys:         km,
		styles:       st,
		current:      current,
		list:         entrylist.New(s, km, st, 80, 24),
		detail:       entrydetail.New(km, st, 80, 24),
		form:         entryform.New(st, 80, 24),
		settingsView: settingsview.New(s, cell, backupDir, backupName, st, 80, 24),
		helpView:     helpview.New(km, st, 80, 24),
		updates:      updates,
		cancelSub:    cancel,
	}
	return m
}

// Init loads the entry list and starts listening for settings updates.
// The subscription delivers the persisted settings immediately, so the
// theme and display preferences apply before the first real paint.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.list.Init(),
		m.waitForSettings(),
	)
}

// waitForSettings blocks on the settings subscription and re-arms
// itself after every delivery.
func (m Model) waitForSettings() tea.Cmd {
	ch := m.updates
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return settingsChangedMsg{settings: s}
	}
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.list.SetSize(contentWidth, contentHeight)
		m.detail.SetSize(contentWidth, contentHeight)
		m.form.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case settingsChangedMsg:
		m.applySettings(msg.settings)
		return m, m.waitForSettings()

	case entrylist.SelectedEntryMsg:
		m.previousView = m.currentView
		m.currentView = ViewDetail
		m.detail.SetEntry(msg.Entry)
		return m, nil

	case entrylist.EditEntryMsg:
		m.previousView = m.currentView
		m.currentView = ViewForm
		return m, m.form.StartEdit(msg.Entry)

	case entrylist.DeleteEntryMsg:
		return m, m.deleteEntry(msg.Kind, msg.ID)

	case entrydetail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case entrydetail.EditMsg:
		m.previousView = m.currentView
		m.currentView = ViewForm
		return m, m.form.StartEdit(msg.Entry)

	case entrydetail.DeleteMsg:
		m.currentView = ViewList
		return m, m.deleteEntry(msg.Kind, msg.ID)

	case entryform.EntrySavedMsg:
		m.currentView = ViewList
		if msg.IsEdit {
			return m, m.updateEntry(msg.Entry)
		}
		return m, m.createEntry(msg.Entry)

	case entryform.FormCancelMsg:
		m.currentView = m.previousView
		return m, nil

	case entryMutatedMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMsg = msg.status
		if m.currentView == ViewDetail {
			m.currentView = ViewList
		}
		return m, m.list.LoadEntries()

	case settingsview.DoneMsg:
		m.currentView = ViewList
		return m, nil

	case settingsview.SavedMsg:
		m.currentView = ViewList
		m.statusMsg = "Settings saved"
		return m, nil

	case settingsview.RestoredMsg:
		m.statusMsg = "Backup restored"
		return m, m.list.LoadEntries()

	case tea.KeyMsg:
		// Global keys that work regardless of current view
		switch {
		case msg.String() == "ctrl+c":
			m.close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			if m.currentView == ViewList && !m.list.InputActive() {
				m.close()
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Help):
			if m.currentView == ViewList || m.currentView == ViewDetail {
				m.previousView = m.currentView
				m.currentView = ViewHelp
				return m, nil
			}
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}

		case key.Matches(msg, m.keys.Back):
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}

		case key.Matches(msg, m.keys.New):
			if m.currentView == ViewList && !m.list.InputActive() {
				m.previousView = m.currentView
				m.currentView = ViewForm
				return m, m.form.StartCreate(m.list.Kind())
			}

		case key.Matches(msg, m.keys.Settings):
			if m.currentView == ViewList && !m.list.InputActive() {
				m.previousView = m.currentView
				m.currentView = ViewSettings
				return m, m.settingsView.Start(m.current)
			}

		case key.Matches(msg, m.keys.ToggleGrid):
			if m.currentView == ViewList && !m.list.InputActive() {
				return m, m.toggleGridView()
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// applySettings propagates a published settings value to every view
// that renders with it.
func (m *Model) applySettings(s model.Settings) {
	m.current = s
	m.styles = theme.NewStyles(theme.ByName(s.ThemeName))
	m.list.SetStyles(m.styles)
	m.list.ApplySettings(s)
	m.detail.SetStyles(m.styles)
	m.form.SetStyles(m.styles)
	m.settingsView.SetStyles(m.styles)
	m.helpView.SetStyles(m.styles)
}

// close releases the settings subscription before quitting.
func (m *Model) close() {
	if m.cancelSub != nil {
		m.cancelSub()
		m.cancelSub = nil
	}
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.styles, "Enscribe", m.pageLabel())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.styles, m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.list.View()
	case ViewDetail:
		return m.detail.View()
	case ViewForm:
		return m.form.View()
	case ViewSettings:
		return m.settingsView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// pageLabel names the active kind page for the header.
func (m Model) pageLabel() string {
	return fmt.Sprintf("%ss · %s", m.list.Kind().Label(), m.list.SortLabel())
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMsg != "" && m.currentView == ViewList {
		return m.statusMsg
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewDetail:
		return "e edit | d delete | j/k scroll | esc back"
	case ViewForm:
		return "enter submit | esc cancel"
	case ViewSettings:
		return "ctrl+b backup | ctrl+r restore | esc back"
	default:
		return "q quit | ? help | n new | / search | f filter | tab sort | h/l page"
	}
}
