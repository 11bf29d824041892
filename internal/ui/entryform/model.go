package entryform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/theme"
)

// maxTitleLen is the editor-enforced cap on entry titles. The store
// accepts longer titles; only the form rejects them.
const maxTitleLen = 16

// EntrySavedMsg is dispatched when the form is submitted.
type EntrySavedMsg struct {
	Entry  model.Entry
	IsEdit bool
}

// FormCancelMsg is dispatched when the user aborts the form.
type FormCancelMsg struct{}

// categoryColors are the preset ARGB swatches offered by the editor.
var categoryColors = []struct {
	Name  string
	Value int64
}{
	{"Purple", 0xFF9575CD},
	{"Blue", 0xFF4FC3F7},
	{"Green", 0xFF81C784},
	{"Yellow", 0xFFFFF176},
	{"Orange", 0xFFFFB74D},
	{"Red", 0xFFE57373},
	{"Gray", 0xFF90A4AE},
}

// formBindings holds form field values on the heap so that huh's
// Value() pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title         string
	category      string
	categoryColor int64

	content   string // note
	checklist string // task, one item per line
	completed bool   // task
	verse     string // verse
	prayer    string // prayer
	priority  int64  // prayer

	reminderAt     string // "YYYY-MM-DD HH:MM", blank for none
	reminderRepeat model.RepeatInterval
	reminderOn     bool
}

// Model is the Bubble Tea model for the entry create/edit form.
type Model struct {
	form    *huh.Form
	fb      *formBindings
	styles  theme.Styles
	kind    model.Kind
	editing *model.Entry
	width   int
	height  int
}

// New creates a new entry form model.
func New(st theme.Styles, width, height int) Model {
	return Model{
		fb:     &formBindings{reminderRepeat: model.RepeatNone},
		styles: st,
		width:  width,
		height: height,
	}
}

// SetStyles swaps the theme-derived styles after a theme change.
func (m *Model) SetStyles(st theme.Styles) {
	m.styles = st
}

// StartCreate initializes the form for a new entry of the given kind.
func (m *Model) StartCreate(kind model.Kind) tea.Cmd {
	m.kind = kind
	m.editing = nil
	*m.fb = formBindings{
		categoryColor:  categoryColors[0].Value,
		reminderRepeat: model.RepeatNone,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form with an existing entry's values.
func (m *Model) StartEdit(e model.Entry) tea.Cmd {
	m.kind = e.Kind
	m.editing = &e
	*m.fb = formBindings{
		title:          e.Title,
		category:       e.Category,
		categoryColor:  e.CategoryColor,
		reminderRepeat: model.RepeatNone,
	}

	switch e.Kind {
	case model.KindNote:
		m.fb.content = e.Note.Content
	case model.KindTask:
		m.fb.checklist = strings.Join(e.Task.Checklist, "\n")
		m.fb.completed = e.Task.Completed
	case model.KindVerse:
		m.fb.verse = e.Verse.Verse
	case model.KindPrayer:
		m.fb.prayer = e.Prayer.Prayer
		m.fb.priority = e.Prayer.Priority
	}

	if e.Reminder != nil {
		m.fb.reminderAt = time.UnixMilli(e.Reminder.TimeMillis).Format("2006-01-02 15:04")
		m.fb.reminderRepeat = e.Reminder.Repeat
		m.fb.reminderOn = e.Reminder.Active
	}

	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the entry form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return FormCancelMsg{} }
	}

	return m, cmd
}

// View renders the entry form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New " + m.kind.Label()
	if m.editing != nil {
		titleText = "Edit " + m.kind.Label()
	}

	content := m.styles.Accent.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := m.coreFields()
	fields = append(fields, m.payloadFields()...)
	fields = append(fields, m.reminderFields()...)

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

// coreFields are the shared fields every kind edits.
func (m *Model) coreFields() []huh.Field {
	colorOpts := make([]huh.Option[int64], len(categoryColors))
	for i, c := range categoryColors {
		colorOpts[i] = huh.NewOption(c.Name, c.Value)
	}

	return []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Short title").
			Value(&m.fb.title).
			Validate(validateTitle),
		huh.NewInput().
			Title("Category").
			Placeholder("Optional label").
			Value(&m.fb.category),
		huh.NewSelect[int64]().
			Title("Category color").
			Options(colorOpts...).
			Value(&m.fb.categoryColor),
	}
}

// payloadFields are the variant-specific fields for the active kind.
func (m *Model) payloadFields() []huh.Field {
	switch m.kind {
	case model.KindNote:
		return []huh.Field{
			huh.NewText().
				Title("Content").
				Placeholder("Write your note...").
				Value(&m.fb.content),
		}
	case model.KindTask:
		fields := []huh.Field{
			huh.NewText().
				Title("Checklist").
				Placeholder("One item per line").
				Value(&m.fb.checklist),
		}
		if m.editing != nil {
			fields = append(fields,
				huh.NewConfirm().
					Title("Completed").
					Value(&m.fb.completed),
			)
		}
		return fields
	case model.KindVerse:
		return []huh.Field{
			huh.NewText().
				Title("Verse").
				Placeholder("Scripture text and reference").
				Value(&m.fb.verse),
		}
	case model.KindPrayer:
		return []huh.Field{
			huh.NewText().
				Title("Prayer").
				Placeholder("Write your prayer...").
				Value(&m.fb.prayer),
			huh.NewSelect[int64]().
				Title("Priority").
				Options(
					huh.NewOption("Normal", int64(0)),
					huh.NewOption("Raised", int64(1)),
					huh.NewOption("High", int64(2)),
					huh.NewOption("Urgent", int64(3)),
				).
				Value(&m.fb.priority),
		}
	default:
		return nil
	}
}

// reminderFields edit the optional reminder value.
func (m *Model) reminderFields() []huh.Field {
	return []huh.Field{
		huh.NewInput().
			Title("Reminder").
			Placeholder("YYYY-MM-DD HH:MM (optional)").
			Value(&m.fb.reminderAt).
			Validate(validateOptionalDateTime),
		huh.NewSelect[model.RepeatInterval]().
			Title("Repeat").
			Options(
				huh.NewOption("Never", model.RepeatNone),
				huh.NewOption("Daily", model.RepeatDaily),
				huh.NewOption("Weekly", model.RepeatWeekly),
				huh.NewOption("Custom", model.RepeatCustom),
			).
			Value(&m.fb.reminderRepeat),
		huh.NewConfirm().
			Title("Reminder enabled").
			Value(&m.fb.reminderOn),
	}
}

// handleSubmit assembles the entry and dispatches EntrySavedMsg.
func (m Model) handleSubmit() tea.Cmd {
	e := model.Entry{
		Kind:          m.kind,
		Title:         strings.TrimSpace(m.fb.title),
		Category:      strings.TrimSpace(m.fb.category),
		CategoryColor: m.fb.categoryColor,
	}
	isEdit := m.editing != nil
	if isEdit {
		e.ID = m.editing.ID
		e.CreatedAt = m.editing.CreatedAt
		e.ModifiedAt = m.editing.ModifiedAt
		e.BackgroundColor = m.editing.BackgroundColor
		e.ImageURI = m.editing.ImageURI
		e.ImageFillCard = m.editing.ImageFillCard
	}

	switch m.kind {
	case model.KindNote:
		e.Note = &model.NotePayload{Content: m.fb.content}
	case model.KindTask:
		e.Task = &model.TaskPayload{
			Checklist: splitChecklist(m.fb.checklist),
			Completed: m.fb.completed,
		}
	case model.KindVerse:
		e.Verse = &model.VersePayload{Verse: m.fb.verse}
	case model.KindPrayer:
		e.Prayer = &model.PrayerPayload{
			Prayer:   m.fb.prayer,
			Priority: m.fb.priority,
		}
	}

	if at := strings.TrimSpace(m.fb.reminderAt); at != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04", at, time.Local); err == nil {
			e.Reminder = &model.Reminder{
				TimeMillis: t.UnixMilli(),
				Repeat:     m.fb.reminderRepeat,
				Active:     m.fb.reminderOn,
			}
		}
	}

	return func() tea.Msg { return EntrySavedMsg{Entry: e, IsEdit: isEdit} }
}

// splitChecklist turns the textarea value into checklist items,
// dropping blank lines.
func splitChecklist(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	if items == nil {
		items = []string{}
	}
	return items
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

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateTitle(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("Title is required")
	}
	if len([]rune(s)) > maxTitleLen {
		return fmt.Errorf("Title must be at most %d characters", maxTitleLen)
	}
	return nil
}

func validateOptionalDateTime(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err != nil {
		return fmt.Errorf("invalid time, use YYYY-MM-DD HH:MM")
	}
	return nil
}
