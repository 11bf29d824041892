package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amethyst/enscribe/internal/model"
)

func note(title, category, content string, modified int64) model.Entry {
	return model.Entry{
		Kind:       model.KindNote,
		Title:      title,
		Category:   category,
		ModifiedAt: modified,
		Note:       &model.NotePayload{Content: content},
	}
}

func verse(title, category string, modified int64) model.Entry {
	return model.Entry{
		Kind:       model.KindVerse,
		Title:      title,
		Category:   category,
		ModifiedAt: modified,
		Verse:      &model.VersePayload{Verse: "text"},
	}
}

func titles(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestFilterBlankQueryMatchesEverything(t *testing.T) {
	entries := []model.Entry{
		note("Groceries", "Home", "milk", 1),
		verse("Psalm 23", "Faith", 2),
	}

	assert.Len(t, Filter(entries, "", nil), 2)
	assert.Len(t, Filter(entries, "   ", nil), 2)
}

func TestFilterMatchesTitleCaseInsensitive(t *testing.T) {
	entries := []model.Entry{
		note("Groceries", "", "", 1),
		note("Reading list", "", "", 2),
	}

	got := Filter(entries, "GROC", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Groceries", got[0].Title)
}

func TestFilterNotesMatchOnContent(t *testing.T) {
	entries := []model.Entry{
		note("Monday", "", "buy oat milk", 1),
		verse("Milk and honey", "", 2),
		verse("Psalm 23", "", 3),
	}

	got := Filter(entries, "milk", nil)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Monday", "Milk and honey"}, titles(got))
}

func TestFilterNonNoteKindsNeverMatchOnBody(t *testing.T) {
	entries := []model.Entry{
		verse("Psalm 23", "", 1), // body is "text"
	}

	assert.Empty(t, Filter(entries, "text", nil))
}

func TestFilterByCategorySelection(t *testing.T) {
	entries := []model.Entry{
		note("a", "Home", "", 1),
		note("b", "Work", "", 2),
		note("c", "", "", 3),
	}

	got := Filter(entries, "", map[string]bool{"Home": true})
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Title)

	// Empty selection disables the category filter.
	assert.Len(t, Filter(entries, "", map[string]bool{}), 3)
}

func TestFilterCombinesQueryAndCategories(t *testing.T) {
	entries := []model.Entry{
		note("alpha", "Home", "", 1),
		note("alpine", "Work", "", 2),
		note("beta", "Home", "", 3),
	}

	got := Filter(entries, "alp", map[string]bool{"Home": true})
	require.Len(t, got, 1)
	assert.Equal(t, "alpha", got[0].Title)
}

func TestSortByModified(t *testing.T) {
	entries := []model.Entry{
		note("old", "", "", 10),
		note("new", "", "", 30),
		note("mid", "", "", 20),
	}

	assert.Equal(t, []string{"new", "mid", "old"}, titles(Sort(entries, ModifiedNewest)))
	assert.Equal(t, []string{"old", "mid", "new"}, titles(Sort(entries, ModifiedOldest)))
}

func TestSortByTitleIgnoresCase(t *testing.T) {
	entries := []model.Entry{
		note("banana", "", "", 1),
		note("Apple", "", "", 2),
		note("cherry", "", "", 3),
	}

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(Sort(entries, TitleAscending)))
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(Sort(entries, TitleDescending)))
}

func TestSortByCategoryUsesTitleAsSecondaryKey(t *testing.T) {
	entries := []model.Entry{
		note("zeta", "Work", "", 1),
		note("alpha", "work", "", 2),
		note("beta", "Home", "", 3),
	}

	got := Sort(entries, CategoryAscending)
	assert.Equal(t, []string{"beta", "alpha", "zeta"}, titles(got))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	entries := []model.Entry{
		note("first", "", "", 5),
		note("second", "", "", 5),
		note("third", "", "", 5),
	}

	got := Sort(entries, ModifiedNewest)
	assert.Equal(t, []string{"first", "second", "third"}, titles(got))
}

func TestSortIsIdempotent(t *testing.T) {
	entries := []model.Entry{
		note("b", "x", "", 2),
		note("a", "x", "", 2),
		note("c", "y", "", 1),
	}

	once := Sort(entries, CategoryAscending)
	twice := Sort(once, CategoryAscending)
	assert.Equal(t, once, twice)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	entries := []model.Entry{
		note("b", "", "", 1),
		note("a", "", "", 2),
	}

	_ = Sort(entries, TitleAscending)
	assert.Equal(t, []string{"b", "a"}, titles(entries))
}

func TestCategoriesDistinctSortedNonBlank(t *testing.T) {
	entries := []model.Entry{
		note("1", "Work", "", 1),
		note("2", "", "", 2),
		note("3", "Home", "", 3),
		note("4", "Work", "", 4),
	}

	assert.Equal(t, []string{"Home", "Work"}, Categories(entries))
}
