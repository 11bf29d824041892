package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/amethyst/enscribe/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// sharedColumns is the column list common to all four entry tables,
// in table order after id.
var sharedColumns = []string{
	"title", "category", "category_color", "background_color",
	"image_uri", "image_fill_card", "reminder",
	"created_at", "modified_at",
}

// kindTable maps an entry kind to its table name.
func kindTable(kind model.Kind) (string, error) {
	switch kind {
	case model.KindNote:
		return "notes", nil
	case model.KindTask:
		return "tasks", nil
	case model.KindVerse:
		return "verses", nil
	case model.KindPrayer:
		return "prayers", nil
	default:
		return "", fmt.Errorf("unknown entry kind %q", kind)
	}
}

// payloadColumns returns the variant-specific columns of a kind's table.
func payloadColumns(kind model.Kind) []string {
	switch kind {
	case model.KindNote:
		return []string{"content"}
	case model.KindTask:
		return []string{"checklist", "completed"}
	case model.KindVerse:
		return []string{"verse"}
	case model.KindPrayer:
		return []string{"prayer", "priority"}
	default:
		return nil
	}
}

// defaultOrder returns the default ORDER BY clause for a kind.
func defaultOrder(kind model.Kind) string {
	switch kind {
	case model.KindNote:
		return "created_at DESC"
	case model.KindTask:
		return "modified_at DESC"
	case model.KindVerse:
		return "lower(title) ASC"
	case model.KindPrayer:
		return "priority DESC, modified_at DESC"
	default:
		return "id ASC"
	}
}

// entryColumns returns the full ordered column list for a kind,
// excluding id.
func entryColumns(kind model.Kind) []string {
	return append(append([]string{}, sharedColumns...), payloadColumns(kind)...)
}

// entryArgs encodes an entry's fields into SQL arguments matching
// entryColumns order.
func entryArgs(e model.Entry) ([]interface{}, error) {
	reminder, err := model.EncodeReminder(e.Reminder)
	if err != nil {
		return nil, err
	}

	args := []interface{}{
		e.Title, e.Category, e.CategoryColor, e.BackgroundColor,
		e.ImageURI, boolToInt(e.ImageFillCard), reminder,
		e.CreatedAt, e.ModifiedAt,
	}

	switch e.Kind {
	case model.KindNote:
		args = append(args, e.Note.Content)
	case model.KindTask:
		checklist, err := model.EncodeChecklist(e.Task.Checklist)
		if err != nil {
			return nil, err
		}
		args = append(args, checklist, boolToInt(e.Task.Completed))
	case model.KindVerse:
		args = append(args, e.Verse.Verse)
	case model.KindPrayer:
		args = append(args, e.Prayer.Prayer, e.Prayer.Priority)
	default:
		return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
	}

	return args, nil
}

// scanEntry scans one row of a kind's table into a model.Entry.
func scanEntry(kind model.Kind, row interface{ Scan(dest ...interface{}) error }) (model.Entry, error) {
	var (
		e            model.Entry
		fillCard     int
		reminderText string
	)
	e.Kind = kind

	shared := []interface{}{
		&e.ID, &e.Title, &e.Category, &e.CategoryColor, &e.BackgroundColor,
		&e.ImageURI, &fillCard, &reminderText,
		&e.CreatedAt, &e.ModifiedAt,
	}

	var (
		content, checklistText, verse, prayer string
		completed                             int
		priority                              int64
	)
	var dest []interface{}
	switch kind {
	case model.KindNote:
		dest = append(shared, &content)
	case model.KindTask:
		dest = append(shared, &checklistText, &completed)
	case model.KindVerse:
		dest = append(shared, &verse)
	case model.KindPrayer:
		dest = append(shared, &prayer, &priority)
	default:
		return model.Entry{}, fmt.Errorf("unknown entry kind %q", kind)
	}

	if err := row.Scan(dest...); err != nil {
		return model.Entry{}, fmt.Errorf("scanning %s row: %w", kind, err)
	}

	e.ImageFillCard = fillCard != 0

	reminder, err := model.DecodeReminder(reminderText)
	if err != nil {
		return model.Entry{}, fmt.Errorf("row %d: %w", e.ID, err)
	}
	e.Reminder = reminder

	switch kind {
	case model.KindNote:
		e.Note = &model.NotePayload{Content: content}
	case model.KindTask:
		checklist, err := model.DecodeChecklist(checklistText)
		if err != nil {
			return model.Entry{}, fmt.Errorf("row %d: %w", e.ID, err)
		}
		e.Task = &model.TaskPayload{Checklist: checklist, Completed: completed != 0}
	case model.KindVerse:
		e.Verse = &model.VersePayload{Verse: verse}
	case model.KindPrayer:
		e.Prayer = &model.PrayerPayload{Prayer: prayer, Priority: priority}
	}

	return e, nil
}

// CreateEntry inserts a new entry and returns the store-assigned id.
func (s *SQLiteStore) CreateEntry(ctx context.Context, e model.Entry) (int64, error) {
	if strings.TrimSpace(e.Title) == "" {
		return 0, fmt.Errorf("entry title must not be empty")
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}
	if e.ID != 0 {
		return 0, fmt.Errorf("entry already has id %d; use UpdateEntry", e.ID)
	}

	now := time.Now().UnixMilli()
	if e.CreatedAt == 0 {
		e.CreatedAt = now
	}
	e.ModifiedAt = now
	if e.ModifiedAt < e.CreatedAt {
		e.ModifiedAt = e.CreatedAt
	}

	table, err := kindTable(e.Kind)
	if err != nil {
		return 0, err
	}
	cols := entryColumns(e.Kind)
	args, err := entryArgs(e)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(cols, ", "),
		placeholders(len(cols)),
	)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", e.Kind, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading assigned %s id: %w", e.Kind, err)
	}
	return id, nil
}

// UpdateEntry rewrites the full record by id and bumps ModifiedAt.
func (s *SQLiteStore) UpdateEntry(ctx context.Context, e model.Entry) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("entry title must not be empty")
	}
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID == 0 {
		return fmt.Errorf("entry has no id; use CreateEntry")
	}

	e.ModifiedAt = time.Now().UnixMilli()
	if e.ModifiedAt < e.CreatedAt {
		e.ModifiedAt = e.CreatedAt
	}

	table, err := kindTable(e.Kind)
	if err != nil {
		return err
	}
	cols := entryColumns(e.Kind)
	args, err := entryArgs(e)
	if err != nil {
		return err
	}

	assignments := make([]string, len(cols))
	for i, c := range cols {
		assignments[i] = c + " = ?"
	}
	args = append(args, e.ID)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = ?",
		table, strings.Join(assignments, ", "),
	)
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s %d: %w", e.Kind, e.ID, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", e.Kind, e.ID, ErrNotFound)
	}
	return nil
}

// DeleteEntry removes one entry by kind and id.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, kind model.Kind, id int64) error {
	table, err := kindTable(kind)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", kind, id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}

// GetEntryByID retrieves a single entry, or ErrNotFound.
func (s *SQLiteStore) GetEntryByID(ctx context.Context, kind model.Kind, id int64) (*model.Entry, error) {
	table, err := kindTable(kind)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowxContext(ctx,
		fmt.Sprintf("SELECT id, %s FROM %s WHERE id = ?",
			strings.Join(entryColumns(kind), ", "), table),
		id)

	e, err := scanEntry(kind, row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting %s %d: %w", kind, id, err)
	}
	return &e, nil
}

// GetEntries retrieves every entry of a kind in its default order.
func (s *SQLiteStore) GetEntries(ctx context.Context, kind model.Kind) ([]model.Entry, error) {
	table, err := kindTable(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT id, %s FROM %s ORDER BY %s",
		strings.Join(entryColumns(kind), ", "), table, defaultOrder(kind))
	return s.queryEntries(ctx, kind, query)
}

// GetPendingTasks retrieves incomplete tasks by modifiedAt descending.
func (s *SQLiteStore) GetPendingTasks(ctx context.Context) ([]model.Entry, error) {
	query := fmt.Sprintf(
		"SELECT id, %s FROM tasks WHERE completed = 0 ORDER BY modified_at DESC",
		strings.Join(entryColumns(model.KindTask), ", "))
	return s.queryEntries(ctx, model.KindTask, query)
}

// queryEntries runs a SELECT and scans every row as the given kind.
func (s *SQLiteStore) queryEntries(ctx context.Context, kind model.Kind, query string, args ...interface{}) ([]model.Entry, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %ss: %w", kind, err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(kind, rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteAllEntries wipes one kind's table.
func (s *SQLiteStore) DeleteAllEntries(ctx context.Context, kind model.Kind) error {
	table, err := kindTable(kind)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("deleting all %ss: %w", kind, err)
	}
	return nil
}

// ReplaceAllEntries deletes every row of all four kinds and bulk-inserts
// the given entries with their ids preserved, in a single transaction.
// On any failure the transaction rolls back and the store is unchanged.
func (s *SQLiteStore) ReplaceAllEntries(ctx context.Context, entries []model.Entry) error {
	// Reject bad input before touching any table.
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning restore transaction: %w", err)
	}
	defer tx.Rollback()

	for _, kind := range model.Kinds {
		table, err := kindTable(kind)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, e := range entries {
		table, err := kindTable(e.Kind)
		if err != nil {
			return err
		}
		cols := entryColumns(e.Kind)
		args, err := entryArgs(e)
		if err != nil {
			return err
		}
		args = append([]interface{}{e.ID}, args...)

		query := fmt.Sprintf(
			"INSERT OR REPLACE INTO %s (id, %s) VALUES (%s)",
			table,
			strings.Join(cols, ", "),
			placeholders(len(cols)+1),
		)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("restoring %s %d: %w", e.Kind, e.ID, err)
		}
	}

	return tx.Commit()
}

// placeholders returns n comma-joined "?" markers.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
