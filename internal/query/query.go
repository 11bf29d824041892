// Package query holds the pure filter and sort logic applied to
// in-memory entry lists. Nothing here touches the store; the UI loads
// entries first and pipes them through these functions on every
// search/sort/filter change.
package query

import (
	"sort"
	"strings"

	"github.com/amethyst/enscribe/internal/model"
)

// SortOrder selects one of the six list orderings.
type SortOrder int

const (
	ModifiedNewest SortOrder = iota
	ModifiedOldest
	TitleAscending
	TitleDescending
	CategoryAscending
	CategoryDescending
)

// Orders lists every sort order in cycling sequence.
var Orders = []SortOrder{
	ModifiedNewest,
	ModifiedOldest,
	TitleAscending,
	TitleDescending,
	CategoryAscending,
	CategoryDescending,
}

// Label returns the order's display name.
func (o SortOrder) Label() string {
	switch o {
	case ModifiedNewest:
		return "Date (Newest)"
	case ModifiedOldest:
		return "Date (Oldest)"
	case TitleAscending:
		return "Title (A-Z)"
	case TitleDescending:
		return "Title (Z-A)"
	case CategoryAscending:
		return "Category (A-Z)"
	case CategoryDescending:
		return "Category (Z-A)"
	default:
		return "Unknown"
	}
}

// Filter returns the entries matching both the search query and the
// category selection. The query is trimmed and lowercased; a blank
// query matches everything. An entry matches the query when its
// lowercased title contains it; notes additionally match on content.
// An empty category set means no category filter is applied.
func Filter(entries []model.Entry, searchQuery string, selectedCategories map[string]bool) []model.Entry {
	q := strings.ToLower(strings.TrimSpace(searchQuery))

	var out []model.Entry
	for _, e := range entries {
		if !matchesQuery(e, q) {
			continue
		}
		if len(selectedCategories) > 0 && !selectedCategories[e.Category] {
			continue
		}
		out = append(out, e)
	}
	return out
}

// matchesQuery reports whether the entry passes the text test for an
// already-normalized query.
func matchesQuery(e model.Entry, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	if e.Kind == model.KindNote && e.Note != nil {
		return strings.Contains(strings.ToLower(e.Note.Content), q)
	}
	return false
}

// Sort returns a new slice ordered by the given sort order. The sort is
// stable: entries with equal keys keep their relative input order, so
// repeated calls on unchanged input produce identical output. The list
// renderer relies on this for diffing.
func Sort(entries []model.Entry, order SortOrder) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch order {
		case ModifiedNewest:
			return a.ModifiedAt > b.ModifiedAt
		case ModifiedOldest:
			return a.ModifiedAt < b.ModifiedAt
		case TitleAscending:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case TitleDescending:
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		case CategoryAscending:
			ac, bc := strings.ToLower(a.Category), strings.ToLower(b.Category)
			if ac != bc {
				return ac < bc
			}
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case CategoryDescending:
			ac, bc := strings.ToLower(a.Category), strings.ToLower(b.Category)
			if ac != bc {
				return ac > bc
			}
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		default:
			return false
		}
	})

	return out
}

// Categories returns the distinct non-blank categories present in the
// entries, sorted alphabetically for the filter dialog.
func Categories(entries []model.Entry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if e.Category == "" || seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		out = append(out, e.Category)
	}
	sort.Strings(out)
	return out
}
