package backup_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethyst/enscribe/internal/backup"
	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/store"
	"github.com/amethyst/enscribe/tests/testutil"
)

func seedStore(t *testing.T, s *store.SQLiteStore) {
	t.Helper()
	ctx := context.Background()

	entries := []model.Entry{
		{
			Kind: model.KindNote, Title: "Journal", Category: "Life",
			Note:     &model.NotePayload{Content: "a good day"},
			Reminder: &model.Reminder{TimeMillis: 1700000000000, Repeat: model.RepeatWeekly, Active: true},
		},
		{
			Kind: model.KindTask, Title: "Groceries",
			Task: &model.TaskPayload{Checklist: []string{"milk", "bread"}, Completed: false},
		},
		{
			Kind: model.KindVerse, Title: "Psalm 23",
			Verse: &model.VersePayload{Verse: "The Lord is my shepherd"},
		},
		{
			Kind: model.KindPrayer, Title: "Family", Category: "Faith",
			Prayer: &model.PrayerPayload{Prayer: "for my family", Priority: 2},
		},
	}
	for _, e := range entries {
		_, err := s.CreateEntry(ctx, e)
		require.NoError(t, err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := testutil.NewTestStore(t)
	dst := testutil.NewTestStore(t)
	ctx := context.Background()

	seedStore(t, src)

	data, err := backup.Export(ctx, src)
	require.NoError(t, err)

	require.NoError(t, backup.Import(ctx, dst, data))

	for _, kind := range model.Kinds {
		want, err := src.GetEntries(ctx, kind)
		require.NoError(t, err)
		got, err := dst.GetEntries(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, want, got, "entries of kind %s", kind)
	}
}

func TestExportDocumentShape(t *testing.T) {
	s := testutil.NewTestStore(t)
	seedStore(t, s)

	data, err := backup.Export(context.Background(), s)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Contains(t, doc, "version")
	assert.Contains(t, doc, "snapshotId")
	assert.Contains(t, doc, "exportedAt")
	for _, key := range []string{"notes", "tasks", "verses", "prayers"} {
		assert.Contains(t, doc, key)
	}

	var version int
	require.NoError(t, json.Unmarshal(doc["version"], &version))
	assert.Equal(t, backup.DocumentVersion, version)
}

func TestExportEmptyStoreProducesEmptyArrays(t *testing.T) {
	s := testutil.NewTestStore(t)

	data, err := backup.Export(context.Background(), s)
	require.NoError(t, err)

	entries, err := backup.Decode(data)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestImportReplacesExistingEntries(t *testing.T) {
	src := testutil.NewTestStore(t)
	dst := testutil.NewTestStore(t)
	ctx := context.Background()

	seedStore(t, src)
	_, err := dst.CreateEntry(ctx, model.Entry{
		Kind: model.KindNote, Title: "doomed",
		Note: &model.NotePayload{Content: "will be replaced"},
	})
	require.NoError(t, err)

	data, err := backup.Export(ctx, src)
	require.NoError(t, err)
	require.NoError(t, backup.Import(ctx, dst, data))

	notes, err := dst.GetEntries(ctx, model.KindNote)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Journal", notes[0].Title)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := backup.Decode([]byte("{not json"))
	assert.ErrorIs(t, err, backup.ErrInvalidDocument)
}

func TestDecodeRejectsMissingArrays(t *testing.T) {
	doc := `{"version":1,"notes":[],"tasks":[],"verses":[]}`
	_, err := backup.Decode([]byte(doc))
	assert.ErrorIs(t, err, backup.ErrInvalidDocument)
}

func TestDecodeRejectsUnsupportedVersion(t *testing.T) {
	doc := `{"version":99,"notes":[],"tasks":[],"verses":[],"prayers":[]}`
	_, err := backup.Decode([]byte(doc))
	assert.ErrorIs(t, err, backup.ErrInvalidDocument)
}

func TestDecodeRejectsBadRecordID(t *testing.T) {
	doc := `{
		"version": 1,
		"notes": [{"id": 0, "title": "x", "content": "y", "createdAt": 1, "modifiedAt": 1}],
		"tasks": [], "verses": [], "prayers": []
	}`
	_, err := backup.Decode([]byte(doc))
	assert.ErrorIs(t, err, backup.ErrInvalidDocument)
}

func TestDecodeAcceptsVersionlessLegacyDocument(t *testing.T) {
	doc := `{
		"notes": [{"id": 3, "title": "old note", "content": "body", "createdAt": 1, "modifiedAt": 2}],
		"tasks": [], "verses": [], "prayers": []
	}`
	entries, err := backup.Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.KindNote, entries[0].Kind)
	assert.Equal(t, int64(3), entries[0].ID)
	assert.Equal(t, "body", entries[0].Note.Content)
}

func TestImportInvalidDocumentLeavesStoreUntouched(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	seedStore(t, s)

	err := backup.Import(ctx, s, []byte(`{"version":1,"notes":[]}`))
	require.ErrorIs(t, err, backup.ErrInvalidDocument)

	for _, kind := range model.Kinds {
		entries, err := s.GetEntries(ctx, kind)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "entries of kind %s", kind)
	}
}
