package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRoundTrip(t *testing.T) {
	r := &Reminder{TimeMillis: 1700000000000, Repeat: RepeatWeekly, Active: true}

	encoded, err := EncodeReminder(r)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	got, err := DecodeReminder(encoded)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestEncodeReminderNil(t *testing.T) {
	encoded, err := EncodeReminder(nil)
	require.NoError(t, err)
	assert.Equal(t, "", encoded)
}

func TestDecodeReminderBlank(t *testing.T) {
	got, err := DecodeReminder("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = DecodeReminder("   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeReminderLegacyPipeForm(t *testing.T) {
	got, err := DecodeReminder("1700000000000|DAILY|true")
	require.NoError(t, err)
	assert.Equal(t, &Reminder{TimeMillis: 1700000000000, Repeat: RepeatDaily, Active: true}, got)
}

func TestDecodeReminderLegacyUnknownRepeat(t *testing.T) {
	got, err := DecodeReminder("42|MONTHLY|false")
	require.NoError(t, err)
	assert.Equal(t, &Reminder{TimeMillis: 42, Repeat: RepeatNone, Active: false}, got)
}

func TestDecodeReminderJSONUnknownRepeat(t *testing.T) {
	got, err := DecodeReminder(`{"timeMillis":42,"repeatInterval":"YEARLY","isActive":true}`)
	require.NoError(t, err)
	assert.Equal(t, RepeatNone, got.Repeat)
}

func TestDecodeReminderBadTime(t *testing.T) {
	_, err := DecodeReminder("not-a-number|DAILY|true")
	assert.Error(t, err)
}

func TestChecklistRoundTrip(t *testing.T) {
	items := []string{"milk", "bread", "item with | pipe"}

	encoded, err := EncodeChecklist(items)
	require.NoError(t, err)

	got, err := DecodeChecklist(encoded)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestChecklistEmptyEncodesBlank(t *testing.T) {
	encoded, err := EncodeChecklist(nil)
	require.NoError(t, err)
	assert.Equal(t, "", encoded)

	got, err := DecodeChecklist("")
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)
}

func TestDecodeChecklistLegacySeparator(t *testing.T) {
	got, err := DecodeChecklist("first|::|second|::|third")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestEntryValidateExactlyOnePayload(t *testing.T) {
	e := Entry{Kind: KindNote, Title: "t", Note: &NotePayload{}}
	assert.NoError(t, e.Validate())

	e.Task = &TaskPayload{}
	assert.Error(t, e.Validate())

	assert.Error(t, Entry{Kind: KindNote, Title: "t"}.Validate())
}

func TestEntryValidatePayloadMustMatchKind(t *testing.T) {
	e := Entry{Kind: KindTask, Title: "t", Note: &NotePayload{}}
	assert.Error(t, e.Validate())

	e = Entry{Kind: KindTask, Title: "t", Task: &TaskPayload{Checklist: []string{}}}
	assert.NoError(t, e.Validate())
}
