// Package backup serializes the full entry set to a single JSON
// document and restores it. Restore is destructive: it replaces every
// entry row. The document is validated in full before any row is
// touched, so a bad file can never leave the store half-wiped.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/store"
)

// DocumentVersion is the current backup document schema version.
// Documents without a version field are treated as version 0, the
// format of exports made before the field existed.
const DocumentVersion = 1

// ErrInvalidDocument is returned when a backup document is malformed,
// missing expected fields, or has an unsupported version. When Import
// returns it, the store has not been modified.
var ErrInvalidDocument = errors.New("invalid backup document")

// Document is the top-level backup structure. The four arrays use
// pointers so a missing key can be told apart from an empty list.
type Document struct {
	Version    int    `json:"version,omitempty"`
	SnapshotID string `json:"snapshotId,omitempty"`
	ExportedAt int64  `json:"exportedAt,omitempty"`

	Notes   *[]noteRecord   `json:"notes"`
	Tasks   *[]taskRecord   `json:"tasks"`
	Verses  *[]verseRecord  `json:"verses"`
	Prayers *[]prayerRecord `json:"prayers"`
}

// entryFields are the wire fields shared by all four record shapes.
// Field names match the historical export format.
type entryFields struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Category        string          `json:"category"`
	CategoryColor   int64           `json:"categoryColor"`
	BackgroundColor *int64          `json:"backgroundColor,omitempty"`
	ImageURI        string          `json:"imageUri,omitempty"`
	ImageFillCard   bool            `json:"imageFillCard"`
	Reminder        *model.Reminder `json:"reminder,omitempty"`
	CreatedAt       int64           `json:"createdAt"`
	ModifiedAt      int64           `json:"modifiedAt"`
}

type noteRecord struct {
	entryFields
	Content string `json:"content"`
}

type taskRecord struct {
	entryFields
	Checklist []string `json:"checklist"`
	Completed bool     `json:"completed"`
}

type verseRecord struct {
	entryFields
	Verse string `json:"verse"`
}

type prayerRecord struct {
	entryFields
	Prayer   string `json:"prayer"`
	Priority int64  `json:"priority"`
}

// Export reads the full unfiltered contents of all four entry tables
// and serializes them to one JSON document. The whole dataset is
// materialized before serialization; this is a snapshot, not a stream.
func Export(ctx context.Context, s store.Store) ([]byte, error) {
	doc := Document{
		Version:    DocumentVersion,
		SnapshotID: uuid.New().String(),
		ExportedAt: time.Now().UnixMilli(),
	}

	notes := []noteRecord{}
	tasks := []taskRecord{}
	verses := []verseRecord{}
	prayers := []prayerRecord{}

	for _, kind := range model.Kinds {
		entries, err := s.GetEntries(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("exporting %ss: %w", kind, err)
		}
		for _, e := range entries {
			shared := sharedFields(e)
			switch kind {
			case model.KindNote:
				notes = append(notes, noteRecord{shared, e.Note.Content})
			case model.KindTask:
				checklist := e.Task.Checklist
				if checklist == nil {
					checklist = []string{}
				}
				tasks = append(tasks, taskRecord{shared, checklist, e.Task.Completed})
			case model.KindVerse:
				verses = append(verses, verseRecord{shared, e.Verse.Verse})
			case model.KindPrayer:
				prayers = append(prayers, prayerRecord{shared, e.Prayer.Prayer, e.Prayer.Priority})
			}
		}
	}

	doc.Notes = &notes
	doc.Tasks = &tasks
	doc.Verses = &verses
	doc.Prayers = &prayers

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup document: %w", err)
	}
	return data, nil
}

// Import parses and validates the whole document, then destructively
// replaces the store's entry rows in one transaction, preserving the
// ids from the document. On ErrInvalidDocument nothing was deleted.
func Import(ctx context.Context, s store.Store, data []byte) error {
	entries, err := Decode(data)
	if err != nil {
		return err
	}
	if err := s.ReplaceAllEntries(ctx, entries); err != nil {
		return fmt.Errorf("restoring entries: %w", err)
	}
	return nil
}

// Decode parses a backup document into entries without touching any
// store. All validation happens here, before Import's delete phase.
func Decode(data []byte) ([]model.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if doc.Version > DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidDocument, doc.Version)
	}
	if doc.Notes == nil || doc.Tasks == nil || doc.Verses == nil || doc.Prayers == nil {
		return nil, fmt.Errorf("%w: missing one of notes/tasks/verses/prayers", ErrInvalidDocument)
	}

	var entries []model.Entry
	for _, r := range *doc.Notes {
		e := r.entryFields.toEntry(model.KindNote)
		e.Note = &model.NotePayload{Content: r.Content}
		entries = append(entries, e)
	}
	for _, r := range *doc.Tasks {
		e := r.entryFields.toEntry(model.KindTask)
		checklist := r.Checklist
		if checklist == nil {
			checklist = []string{}
		}
		e.Task = &model.TaskPayload{Checklist: checklist, Completed: r.Completed}
		entries = append(entries, e)
	}
	for _, r := range *doc.Verses {
		e := r.entryFields.toEntry(model.KindVerse)
		e.Verse = &model.VersePayload{Verse: r.Verse}
		entries = append(entries, e)
	}
	for _, r := range *doc.Prayers {
		e := r.entryFields.toEntry(model.KindPrayer)
		e.Prayer = &model.PrayerPayload{Prayer: r.Prayer, Priority: r.Priority}
		entries = append(entries, e)
	}

	for _, e := range entries {
		if err := validateEntry(e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}

	return entries, nil
}

// sharedFields copies an entry's common fields into the wire shape.
func sharedFields(e model.Entry) entryFields {
	return entryFields{
		ID:              e.ID,
		Title:           e.Title,
		Category:        e.Category,
		CategoryColor:   e.CategoryColor,
		BackgroundColor: e.BackgroundColor,
		ImageURI:        e.ImageURI,
		ImageFillCard:   e.ImageFillCard,
		Reminder:        e.Reminder,
		CreatedAt:       e.CreatedAt,
		ModifiedAt:      e.ModifiedAt,
	}
}

// toEntry copies the wire fields back into a model.Entry of the kind.
func (f entryFields) toEntry(kind model.Kind) model.Entry {
	return model.Entry{
		Kind:            kind,
		ID:              f.ID,
		Title:           f.Title,
		Category:        f.Category,
		CategoryColor:   f.CategoryColor,
		BackgroundColor: f.BackgroundColor,
		ImageURI:        f.ImageURI,
		ImageFillCard:   f.ImageFillCard,
		Reminder:        f.Reminder,
		CreatedAt:       f.CreatedAt,
		ModifiedAt:      f.ModifiedAt,
	}
}

// validateEntry checks one decoded record for structural sanity.
func validateEntry(e model.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.ID <= 0 {
		return fmt.Errorf("%s %q: id %d out of range", e.Kind, e.Title, e.ID)
	}
	return nil
}
