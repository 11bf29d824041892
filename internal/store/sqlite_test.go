package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/store"
	"github.com/amethyst/enscribe/tests/testutil"
)

func newNote(title string) model.Entry {
	return model.Entry{
		Kind:  model.KindNote,
		Title: title,
		Note:  &model.NotePayload{Content: "content of " + title},
	}
}

func newTask(title string, completed bool) model.Entry {
	return model.Entry{
		Kind:  model.KindTask,
		Title: title,
		Task:  &model.TaskPayload{Checklist: []string{"one", "two"}, Completed: completed},
	}
}

func newVerse(title string) model.Entry {
	return model.Entry{
		Kind:  model.KindVerse,
		Title: title,
		Verse: &model.VersePayload{Verse: "verse text"},
	}
}

func newPrayer(title string, priority int64) model.Entry {
	return model.Entry{
		Kind:   model.KindPrayer,
		Title:  title,
		Prayer: &model.PrayerPayload{Prayer: "prayer text", Priority: priority},
	}
}

func TestCreateAndGetEntry(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	e := newNote("First note")
	e.Category = "Journal"
	e.CategoryColor = 0xFF9575CD
	e.Reminder = &model.Reminder{TimeMillis: 1700000000000, Repeat: model.RepeatDaily, Active: true}

	id, err := s.CreateEntry(ctx, e)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := s.GetEntryByID(ctx, model.KindNote, id)
	require.NoError(t, err)

	assert.Equal(t, "First note", got.Title)
	assert.Equal(t, "Journal", got.Category)
	assert.Equal(t, int64(0xFF9575CD), got.CategoryColor)
	assert.Equal(t, "content of First note", got.Note.Content)
	require.NotNil(t, got.Reminder)
	assert.Equal(t, model.RepeatDaily, got.Reminder.Repeat)
	assert.True(t, got.Reminder.Active)
	assert.Positive(t, got.CreatedAt)
	assert.GreaterOrEqual(t, got.ModifiedAt, got.CreatedAt)
}

func TestCreateEntryRejectsBlankTitle(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.CreateEntry(context.Background(), newNote("   "))
	assert.Error(t, err)
}

func TestCreateEntryRejectsExistingID(t *testing.T) {
	s := testutil.NewTestStore(t)

	e := newNote("note")
	e.ID = 7
	_, err := s.CreateEntry(context.Background(), e)
	assert.Error(t, err)
}

func TestCreateEntryRejectsMismatchedPayload(t *testing.T) {
	s := testutil.NewTestStore(t)

	e := model.Entry{Kind: model.KindTask, Title: "t", Note: &model.NotePayload{}}
	_, err := s.CreateEntry(context.Background(), e)
	assert.Error(t, err)
}

func TestUpdateEntry(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	id, err := s.CreateEntry(ctx, newTask("Chores", false))
	require.NoError(t, err)

	got, err := s.GetEntryByID(ctx, model.KindTask, id)
	require.NoError(t, err)

	got.Title = "Weekend chores"
	got.Task.Completed = true
	got.Task.Checklist = []string{"laundry"}
	require.NoError(t, s.UpdateEntry(ctx, *got))

	updated, err := s.GetEntryByID(ctx, model.KindTask, id)
	require.NoError(t, err)
	assert.Equal(t, "Weekend chores", updated.Title)
	assert.True(t, updated.Task.Completed)
	assert.Equal(t, []string{"laundry"}, updated.Task.Checklist)
	assert.GreaterOrEqual(t, updated.ModifiedAt, got.ModifiedAt)
}

func TestUpdateEntryNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	e := newNote("ghost")
	e.ID = 999
	err := s.UpdateEntry(context.Background(), e)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteEntry(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	id, err := s.CreateEntry(ctx, newVerse("Psalm 23"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(ctx, model.KindVerse, id))

	_, err = s.GetEntryByID(ctx, model.KindVerse, id)
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.DeleteEntry(ctx, model.KindVerse, id)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetEntriesNotesNewestCreatedFirst(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	older := newNote("older")
	older.CreatedAt = 1000
	newer := newNote("newer")
	newer.CreatedAt = 2000

	_, err := s.CreateEntry(ctx, older)
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, newer)
	require.NoError(t, err)

	got, err := s.GetEntries(ctx, model.KindNote)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)
	assert.Equal(t, "older", got[1].Title)
}

func TestGetEntriesVersesByTitleIgnoringCase(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"john 3:16", "Genesis 1:1", "Acts 2:38"} {
		_, err := s.CreateEntry(ctx, newVerse(title))
		require.NoError(t, err)
	}

	got, err := s.GetEntries(ctx, model.KindVerse)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Acts 2:38", got[0].Title)
	assert.Equal(t, "Genesis 1:1", got[1].Title)
	assert.Equal(t, "john 3:16", got[2].Title)
}

func TestGetEntriesPrayersByPriorityDescending(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateEntry(ctx, newPrayer("low", 0))
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, newPrayer("urgent", 3))
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, newPrayer("mid", 1))
	require.NoError(t, err)

	got, err := s.GetEntries(ctx, model.KindPrayer)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "urgent", got[0].Title)
	assert.Equal(t, "mid", got[1].Title)
	assert.Equal(t, "low", got[2].Title)
}

func TestGetPendingTasksExcludesCompleted(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateEntry(ctx, newTask("open", false))
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, newTask("done", true))
	require.NoError(t, err)

	got, err := s.GetPendingTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "open", got[0].Title)

	all, err := s.GetEntries(ctx, model.KindTask)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteAllEntriesOnlyTouchesOneKind(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateEntry(ctx, newNote("note"))
	require.NoError(t, err)
	_, err = s.CreateEntry(ctx, newVerse("verse"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteAllEntries(ctx, model.KindNote))

	notes, err := s.GetEntries(ctx, model.KindNote)
	require.NoError(t, err)
	assert.Empty(t, notes)

	verses, err := s.GetEntries(ctx, model.KindVerse)
	require.NoError(t, err)
	assert.Len(t, verses, 1)
}

func TestReplaceAllEntries(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateEntry(ctx, newNote("doomed"))
	require.NoError(t, err)

	replacement := newPrayer("restored", 2)
	replacement.ID = 42
	replacement.CreatedAt = 1000
	replacement.ModifiedAt = 2000

	require.NoError(t, s.ReplaceAllEntries(ctx, []model.Entry{replacement}))

	notes, err := s.GetEntries(ctx, model.KindNote)
	require.NoError(t, err)
	assert.Empty(t, notes)

	got, err := s.GetEntryByID(ctx, model.KindPrayer, 42)
	require.NoError(t, err)
	assert.Equal(t, "restored", got.Title)
	assert.Equal(t, int64(1000), got.CreatedAt)
	assert.Equal(t, int64(2000), got.ModifiedAt)
}

func TestReplaceAllEntriesRejectsInvalidInputBeforeWiping(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateEntry(ctx, newNote("survivor"))
	require.NoError(t, err)

	bad := model.Entry{Kind: model.KindNote, Title: "no payload", ID: 1}
	err = s.ReplaceAllEntries(ctx, []model.Entry{bad})
	require.Error(t, err)

	notes, err := s.GetEntries(ctx, model.KindNote)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.Equal(t, "survivor", notes[0].Title)
}

func TestSettingsDefaultsBeforeFirstSave(t *testing.T) {
	s := testutil.NewTestStore(t)

	got, err := s.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), got)
}

func TestSettingsSaveAndReload(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	next := model.Settings{
		ID:           model.SettingsRowID,
		ThemeName:    "Midnight",
		IsGridView:   false,
		ShowCategory: true,
		ShowDateTime: false,
	}
	require.NoError(t, s.SaveSettings(ctx, next))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	// A second save replaces the single row.
	next.ThemeName = "Amethyst"
	require.NoError(t, s.SaveSettings(ctx, next))

	got, err = s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Amethyst", got.ThemeName)
}
