package store

import (
	"context"
	"errors"

	"github.com/amethyst/enscribe/internal/model"
)

// ErrNotFound is returned when a lookup by id matches no row. Callers
// are expected to branch on it with errors.Is rather than treat it as
// a storage failure.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for journal entries and the
// settings row. Implementations must serialize concurrent writers;
// callers must await each call before depending on its effects.
type Store interface {
	// === Entries ===

	// CreateEntry inserts a new entry of its kind and returns the
	// store-assigned id. The entry's ID field must be 0.
	CreateEntry(ctx context.Context, e model.Entry) (int64, error)

	// UpdateEntry rewrites the full record and bumps ModifiedAt.
	UpdateEntry(ctx context.Context, e model.Entry) error

	// DeleteEntry removes one entry by kind and id.
	DeleteEntry(ctx context.Context, kind model.Kind, id int64) error

	// GetEntryByID returns the entry or ErrNotFound.
	GetEntryByID(ctx context.Context, kind model.Kind, id int64) (*model.Entry, error)

	// GetEntries returns every entry of a kind in its default order:
	// notes by createdAt descending, tasks by modifiedAt descending,
	// verses by title ascending, prayers by priority then modifiedAt
	// descending.
	GetEntries(ctx context.Context, kind model.Kind) ([]model.Entry, error)

	// GetPendingTasks returns incomplete tasks by modifiedAt descending.
	GetPendingTasks(ctx context.Context) ([]model.Entry, error)

	// DeleteAllEntries wipes one kind's table.
	DeleteAllEntries(ctx context.Context, kind model.Kind) error

	// ReplaceAllEntries deletes every row of all four kinds and inserts
	// the given entries with their ids preserved (replace on conflict),
	// all in one transaction. Used by restore.
	ReplaceAllEntries(ctx context.Context, entries []model.Entry) error

	// === Settings ===

	// GetSettings returns the settings row, or defaults when none has
	// been saved yet.
	GetSettings(ctx context.Context) (model.Settings, error)

	// SaveSettings upserts the single settings row (fixed id 0).
	SaveSettings(ctx context.Context, s model.Settings) error

	Close() error
}
