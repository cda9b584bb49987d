package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/w-h-a/soul/record"
)

func TestSelectTextPrefersExplicitFields(t *testing.T) {
	rec := record.New(record.F("Event", "x"), record.F("summary", "short"), record.F("embedding_text", "explicit"))
	text, ok := SelectText(rec)
	assert.True(t, ok)
	assert.Equal(t, "explicit", text)

	rec = record.New(record.F("Event", "x"), record.F("Summary", "short"), record.F("embedding_text", " "))
	text, ok = SelectText(rec)
	assert.True(t, ok)
	assert.Equal(t, "short", text)
}

func TestSelectTextSynthesizes(t *testing.T) {
	rec := record.New(
		record.F("Timestamp", "2024-05-01"),
		record.F("type", "memory"),
		record.F("Event", "Planted trees"),
		record.F("Weight", 4.0),
		record.F("Empty", ""),
		record.F("ID", "9"),
		record.F("Feeling", "hopeful"),
	)
	text, ok := SelectText(rec)
	assert.True(t, ok)
	assert.Equal(t, "Event: Planted trees | Feeling: hopeful", text)
}

func TestSelectTextNothingToEmbed(t *testing.T) {
	rec := record.New(record.F("id", "1"), record.F("type", "memory"), record.F("Count", 2.0), record.F("Note", " "))
	_, ok := SelectText(rec)
	assert.False(t, ok)
}
