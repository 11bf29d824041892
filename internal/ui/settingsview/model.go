package settingsview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/amethyst/enscribe/internal/backup"
	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/settings"
	"github.com/amethyst/enscribe/internal/store"
	"github.com/amethyst/enscribe/internal/theme"
)

// Mode represents the current state of the settings view.
type Mode int

const (
	ModeForm           Mode = iota // Edit display preferences
	ModeConfirmRestore             // Confirm the destructive restore
	ModeWorking                    // Backup or restore in flight
	ModeResult                     // Show the outcome of a backup/restore
)

// DoneMsg signals the settings view should close.
type DoneMsg struct{}

// SavedMsg signals that preferences were saved.
type SavedMsg struct {
	Settings model.Settings
}

// RestoredMsg signals that entries were replaced from a backup, so the
// list view must reload.
type RestoredMsg struct{}

// backupResultMsg carries the outcome of writing a backup file.
type backupResultMsg struct {
	path string
	err  error
}

// restoreResultMsg carries the outcome of importing a backup file.
type restoreResultMsg struct {
	path string
	err  error
}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	themeName    string
	gridView     bool
	showCategory bool
	showDateTime bool

	restorePath    string
	restoreConfirm bool
}

// Model is the Bubble Tea model for the settings and backup UI.
type Model struct {
	mode  Mode
	store store.Store
	cell  *settings.Cell

	backupDir  string
	backupName string

	form           *huh.Form
	confirmRestore *huh.Form
	fb             *formBindings

	spinner    spinner.Model
	workingMsg string
	resultMsg  string
	resultErr  error
	resultCmd  tea.Cmd

	styles        theme.Styles
	width, height int
}

// New creates a new settings view model.
func New(s store.Store, cell *settings.Cell, backupDir, backupName string, st theme.Styles, width, height int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		mode:       ModeForm,
		store:      s,
		cell:       cell,
		backupDir:  backupDir,
		backupName: backupName,
		fb:         &formBindings{},
		spinner:    sp,
		styles:     st,
		width:      width,
		height:     height,
	}
}

// SetStyles swaps the theme-derived styles after a theme change.
func (m *Model) SetStyles(st theme.Styles) {
	m.styles = st
}

// Start initializes the preferences form from the current settings.
func (m *Model) Start(current model.Settings) tea.Cmd {
	m.mode = ModeForm
	m.resultMsg = ""
	m.resultErr = nil
	m.fb.themeName = current.ThemeName
	m.fb.gridView = current.IsGridView
	m.fb.showCategory = current.ShowCategory
	m.fb.showDateTime = current.ShowDateTime
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the settings view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case backupResultMsg:
		m.mode = ModeResult
		m.resultErr = msg.err
		m.resultCmd = nil
		if msg.err == nil {
			m.resultMsg = fmt.Sprintf("Backup written to %s", msg.path)
		}
		return m, nil

	case restoreResultMsg:
		m.mode = ModeResult
		m.resultErr = msg.err
		m.resultCmd = nil
		if msg.err == nil {
			m.resultMsg = fmt.Sprintf("Entries restored from %s", msg.path)
			m.resultCmd = func() tea.Msg { return RestoredMsg{} }
		}
		return m, nil

	case spinner.TickMsg:
		if m.mode == ModeWorking {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateActiveForm(msg)
}

// handleKeyMsg processes key messages based on the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		switch msg.String() {
		case "ctrl+b":
			m.mode = ModeWorking
			m.workingMsg = "Writing backup..."
			return m, tea.Batch(m.spinner.Tick, m.runBackup())
		case "ctrl+r":
			m.fb.restorePath = m.backupPath()
			m.fb.restoreConfirm = false
			m.confirmRestore = m.buildRestoreConfirmForm()
			m.mode = ModeConfirmRestore
			return m, m.confirmRestore.Init()
		}
		return m.updateSettingsForm(msg)

	case ModeConfirmRestore:
		return m.updateConfirmRestore(msg)

	case ModeResult:
		switch msg.String() {
		case "enter", "esc":
			cmd := m.resultCmd
			m.resultCmd = nil
			m.mode = ModeForm
			m.form = m.buildForm()
			return m, tea.Batch(m.form.Init(), cmd)
		}
		return m, nil

	case ModeWorking:
		// The transaction finishes on its own; no cancel.
		return m, nil
	}
	return m, nil
}

// updateActiveForm dispatches non-key messages to the active form.
func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case ModeForm:
		return m.updateSettingsForm(msg)
	case ModeConfirmRestore:
		return m.updateConfirmRestore(msg)
	}
	return m, nil
}

// --- Preferences form ---

func (m *Model) buildForm() *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.Themes))
	for _, t := range theme.Themes {
		themeOpts = append(themeOpts, huh.NewOption(
			fmt.Sprintf("%s — %s", t.Name, t.Description), t.Name,
		))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&m.fb.themeName),
			huh.NewConfirm().
				Title("Grid view").
				Affirmative("Grid").
				Negative("List").
				Value(&m.fb.gridView),
			huh.NewConfirm().
				Title("Show category on cards").
				Value(&m.fb.showCategory),
			huh.NewConfirm().
				Title("Show date and time on cards").
				Value(&m.fb.showDateTime),
		),
	).WithWidth(m.formWidth())
}

func (m Model) updateSettingsForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.saveSettings()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return DoneMsg{} }
	}

	return m, cmd
}

// saveSettings persists the edited preferences through the cell so
// that every subscriber sees the change.
func (m Model) saveSettings() tea.Cmd {
	cell := m.cell
	next := model.Settings{
		ID:           model.SettingsRowID,
		ThemeName:    m.fb.themeName,
		IsGridView:   m.fb.gridView,
		ShowCategory: m.fb.showCategory,
		ShowDateTime: m.fb.showDateTime,
	}
	return func() tea.Msg {
		if err := cell.Save(context.Background(), next); err != nil {
			return backupResultMsg{err: fmt.Errorf("save settings: %w", err)}
		}
		return SavedMsg{Settings: next}
	}
}

// --- Restore confirmation ---

func (m *Model) buildRestoreConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backup file").
				Description("Path of the JSON document to restore from.").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}).
				Value(&m.fb.restorePath),
			huh.NewConfirm().
				Title("Restore from backup?").
				Description("This replaces every entry with the file's contents. Current entries are lost.").
				Affirmative("Yes, restore").
				Negative("Cancel").
				Value(&m.fb.restoreConfirm),
		),
	).WithWidth(m.formWidth())
}

func (m Model) updateConfirmRestore(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmRestore == nil {
		return m, nil
	}

	mdl, cmd := m.confirmRestore.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmRestore = f
	}

	if m.confirmRestore.State == huh.StateCompleted {
		if m.fb.restoreConfirm {
			m.mode = ModeWorking
			m.workingMsg = "Restoring entries..."
			return m, tea.Batch(m.spinner.Tick, m.runRestore())
		}
		m.mode = ModeForm
		m.form = m.buildForm()
		return m, m.form.Init()
	}
	if m.confirmRestore.State == huh.StateAborted {
		m.mode = ModeForm
		m.form = m.buildForm()
		return m, m.form.Init()
	}

	return m, cmd
}

// --- Backup / restore commands ---

// runBackup exports every entry to the configured backup file.
func (m Model) runBackup() tea.Cmd {
	s := m.store
	path := m.backupPath()
	return func() tea.Msg {
		data, err := backup.Export(context.Background(), s)
		if err != nil {
			return backupResultMsg{err: err}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return backupResultMsg{err: fmt.Errorf("create backup dir: %w", err)}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return backupResultMsg{err: fmt.Errorf("write backup: %w", err)}
		}
		return backupResultMsg{path: path}
	}
}

// runRestore validates the backup file and replaces all entries. The
// store is left untouched when the document fails validation.
func (m Model) runRestore() tea.Cmd {
	s := m.store
	path := strings.TrimSpace(m.fb.restorePath)
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return restoreResultMsg{err: fmt.Errorf("read backup: %w", err)}
		}
		if err := backup.Import(context.Background(), s, data); err != nil {
			return restoreResultMsg{err: err}
		}
		return restoreResultMsg{path: path}
	}
}

func (m Model) backupPath() string {
	return filepath.Join(m.backupDir, m.backupName)
}

// --- View ---

// View renders the settings UI based on the current mode.
func (m Model) View() string {
	switch m.mode {
	case ModeForm:
		return m.viewForm()
	case ModeConfirmRestore:
		return m.viewHuh(m.confirmRestore)
	case ModeWorking:
		return m.viewWorking()
	case ModeResult:
		return m.viewResult()
	default:
		return ""
	}
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Accent.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(m.form.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"ctrl+b backup | ctrl+r restore | esc back",
	))

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Render(b.String())
}

func (m Model) viewHuh(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Render(f.View())
}

func (m Model) viewWorking() string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Render(fmt.Sprintf("%s %s", m.spinner.View(), m.workingMsg))
}

func (m Model) viewResult() string {
	var content string
	if m.resultErr != nil {
		content = m.styles.Error.Render("Operation failed") + "\n\n" +
			m.resultErr.Error() + "\n\n" +
			m.styles.Help.Render("enter/esc back")
	} else {
		content = m.styles.Accent.Render("Done") + "\n\n" +
			m.resultMsg + "\n\n" +
			m.styles.Help.Render("enter/esc back")
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width).
		Render(content)
}

// --- Helpers ---

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}
