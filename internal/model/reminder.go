package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RepeatInterval describes how often a reminder re-fires.
type RepeatInterval string

const (
	RepeatNone   RepeatInterval = "NONE"
	RepeatDaily  RepeatInterval = "DAILY"
	RepeatWeekly RepeatInterval = "WEEKLY"
	RepeatCustom RepeatInterval = "CUSTOM"
)

// repeatIntervals maps interval names to their canonical values for
// decoding. Unknown names decode to RepeatNone.
var repeatIntervals = map[string]RepeatInterval{
	string(RepeatNone):   RepeatNone,
	string(RepeatDaily):  RepeatDaily,
	string(RepeatWeekly): RepeatWeekly,
	string(RepeatCustom): RepeatCustom,
}

// Reminder is a scheduled notification owned by a single entry. It has
// no lifecycle of its own: it is stored inline with its entry and
// deleted with it.
type Reminder struct {
	// TimeMillis is when the reminder fires, epoch milliseconds.
	TimeMillis int64 `json:"timeMillis"`

	// Repeat controls re-firing after the first trigger.
	Repeat RepeatInterval `json:"repeatInterval"`

	// Active reports whether the reminder is currently enabled.
	Active bool `json:"isActive"`
}

// EncodeReminder serializes a reminder to its column representation, a
// small JSON object. A nil reminder encodes to the empty string.
func EncodeReminder(r *Reminder) (string, error) {
	if r == nil {
		return "", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encoding reminder: %w", err)
	}
	return string(b), nil
}

// DecodeReminder parses a reminder column value. Blank input yields nil
// with no error. Besides the JSON form, the legacy pipe-delimited
// "timeMillis|REPEAT|isActive" form from old databases and backups is
// still accepted.
func DecodeReminder(data string) (*Reminder, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, nil
	}

	if strings.HasPrefix(data, "{") {
		var r Reminder
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("decoding reminder: %w", err)
		}
		if _, ok := repeatIntervals[string(r.Repeat)]; !ok {
			r.Repeat = RepeatNone
		}
		return &r, nil
	}

	// Legacy pipe-delimited form.
	parts := strings.Split(data, "|")
	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("decoding reminder time %q: %w", parts[0], err)
	}
	r := &Reminder{TimeMillis: t, Repeat: RepeatNone}
	if len(parts) > 1 {
		if iv, ok := repeatIntervals[parts[1]]; ok {
			r.Repeat = iv
		}
	}
	if len(parts) > 2 {
		r.Active = parts[2] == "true"
	}
	return r, nil
}

// legacyChecklistSeparator is the multi-character join sequence old
// databases used for checklist columns.
const legacyChecklistSeparator = "|::|"

// EncodeChecklist serializes checklist items to their column
// representation, a JSON string array. An empty list encodes to the
// empty string.
func EncodeChecklist(items []string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding checklist: %w", err)
	}
	return string(b), nil
}

// DecodeChecklist parses a checklist column value. Blank input yields
// an empty list. The legacy separator-joined form is still accepted.
func DecodeChecklist(data string) ([]string, error) {
	if strings.TrimSpace(data) == "" {
		return []string{}, nil
	}
	if strings.HasPrefix(data, "[") {
		var items []string
		if err := json.Unmarshal([]byte(data), &items); err != nil {
			return nil, fmt.Errorf("decoding checklist: %w", err)
		}
		if items == nil {
			items = []string{}
		}
		return items, nil
	}
	return strings.Split(data, legacyChecklistSeparator), nil
}
