package model

import "fmt"

// Kind discriminates the four entry variants.
type Kind string

const (
	KindNote   Kind = "note"
	KindTask   Kind = "task"
	KindVerse  Kind = "verse"
	KindPrayer Kind = "prayer"
)

// Kinds lists every entry kind in display order.
var Kinds = []Kind{KindNote, KindTask, KindVerse, KindPrayer}

// Label returns the human-readable singular name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindNote:
		return "Note"
	case KindTask:
		return "Task"
	case KindVerse:
		return "Verse"
	case KindPrayer:
		return "Prayer"
	default:
		return string(k)
	}
}

// Entry is one user-created journal item. It is a tagged union: Kind
// selects which of the four payload pointers is set, and exactly one
// must be non-nil. The shared fields are common to all kinds.
type Entry struct {
	// Kind identifies the variant and which payload pointer is set.
	Kind Kind `json:"-"`

	// ID is assigned by the store on creation; 0 means not yet inserted.
	// IDs are unique per kind, not across kinds.
	ID int64 `json:"id"`

	// Title is the short user-supplied heading. The editor caps it at
	// 16 characters; the store does not enforce this.
	Title string `json:"title"`

	// Category is a free-form label used for filtering. Blank means
	// uncategorized.
	Category string `json:"category"`

	// CategoryColor and BackgroundColor are ARGB-encoded color values.
	// BackgroundColor is nil when the entry uses the theme default.
	CategoryColor   int64  `json:"categoryColor"`
	BackgroundColor *int64 `json:"backgroundColor,omitempty"`

	// ImageURI references an externally-owned image, if any.
	// ImageFillCard selects full-card rendering over a banner.
	ImageURI      string `json:"imageUri,omitempty"`
	ImageFillCard bool   `json:"imageFillCard"`

	// Reminder is the scheduled notification for this entry, if any.
	Reminder *Reminder `json:"reminder,omitempty"`

	// CreatedAt is set once at creation; ModifiedAt is updated on every
	// edit. Both are epoch milliseconds, and ModifiedAt >= CreatedAt.
	CreatedAt  int64 `json:"createdAt"`
	ModifiedAt int64 `json:"modifiedAt"`

	Note   *NotePayload   `json:"note,omitempty"`
	Task   *TaskPayload   `json:"task,omitempty"`
	Verse  *VersePayload  `json:"verse,omitempty"`
	Prayer *PrayerPayload `json:"prayer,omitempty"`
}

// NotePayload is the variant data for a Note entry.
type NotePayload struct {
	Content string `json:"content"`
}

// TaskPayload is the variant data for a Task entry.
type TaskPayload struct {
	Checklist []string `json:"checklist"`
	Completed bool     `json:"completed"`
}

// VersePayload is the variant data for a Verse entry.
type VersePayload struct {
	Verse string `json:"verse"`
}

// PrayerPayload is the variant data for a Prayer entry.
type PrayerPayload struct {
	Prayer   string `json:"prayer"`
	Priority int64  `json:"priority"`
}

// Validate checks that exactly one payload is set and that it matches
// the declared kind.
func (e Entry) Validate() error {
	set := 0
	if e.Note != nil {
		set++
	}
	if e.Task != nil {
		set++
	}
	if e.Verse != nil {
		set++
	}
	if e.Prayer != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("entry %q: %d payloads set, want exactly 1", e.Title, set)
	}

	switch e.Kind {
	case KindNote:
		if e.Note == nil {
			return fmt.Errorf("entry %q: kind is note but note payload is nil", e.Title)
		}
	case KindTask:
		if e.Task == nil {
			return fmt.Errorf("entry %q: kind is task but task payload is nil", e.Title)
		}
	case KindVerse:
		if e.Verse == nil {
			return fmt.Errorf("entry %q: kind is verse but verse payload is nil", e.Title)
		}
	case KindPrayer:
		if e.Prayer == nil {
			return fmt.Errorf("entry %q: kind is prayer but prayer payload is nil", e.Title)
		}
	default:
		return fmt.Errorf("entry %q: unknown kind %q", e.Title, e.Kind)
	}
	return nil
}

// Body returns the long-form text of the entry: note content, the verse
// or prayer text, or the checklist joined for display. Used by the
// detail view and by search for notes.
func (e Entry) Body() string {
	switch e.Kind {
	case KindNote:
		if e.Note != nil {
			return e.Note.Content
		}
	case KindVerse:
		if e.Verse != nil {
			return e.Verse.Verse
		}
	case KindPrayer:
		if e.Prayer != nil {
			return e.Prayer.Prayer
		}
	case KindTask:
		// Tasks render their checklist item by item, not as one body.
	}
	return ""
}
