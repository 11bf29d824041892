package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amethyst/enscribe/internal/model"
)

// entryMutatedMsg reports the outcome of a create/update/delete so the
// list can reload.
type entryMutatedMsg struct {
	status string
	err    error
}

// createEntry returns a command that persists a new entry.
func (m Model) createEntry(e model.Entry) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if _, err := s.CreateEntry(context.Background(), e); err != nil {
			return entryMutatedMsg{err: err}
		}
		return entryMutatedMsg{status: fmt.Sprintf("%s %q created", e.Kind.Label(), e.Title)}
	}
}

// updateEntry returns a command that saves an edited entry.
func (m Model) updateEntry(e model.Entry) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.UpdateEntry(context.Background(), e); err != nil {
			return entryMutatedMsg{err: err}
		}
		return entryMutatedMsg{status: fmt.Sprintf("%s %q saved", e.Kind.Label(), e.Title)}
	}
}

// deleteEntry returns a command that removes an entry by kind and id.
func (m Model) deleteEntry(kind model.Kind, id int64) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := s.DeleteEntry(context.Background(), kind, id); err != nil {
			return entryMutatedMsg{err: err}
		}
		return entryMutatedMsg{status: fmt.Sprintf("%s deleted", kind.Label())}
	}
}

// toggleGridView flips the grid preference through the settings cell,
// so the change persists and reaches every subscriber.
func (m Model) toggleGridView() tea.Cmd {
	cell := m.cell
	next := m.current
	next.IsGridView = !next.IsGridView
	return func() tea.Msg {
		if err := cell.Save(context.Background(), next); err != nil {
			return entryMutatedMsg{err: err}
		}
		return nil
	}
}
