package summarizer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/w-h-a/soul/corpus"
	"github.com/w-h-a/soul/record"
)

func newSummarizer(t *testing.T, recs []*record.Record, opts ...Option) *Summarizer {
	t.Helper()
	store, err := corpus.New(recs)
	require.NoError(t, err)
	return New(store, opts...)
}

func memory(text string) *record.Record {
	return record.New(record.F("type", "memory"), record.F("Event", text))
}

func state(mood string) *record.Record {
	return record.New(
		record.F("Timestamp", "2024-01-01"),
		record.F("type", "Ecodia"),
		record.F("Mood", mood),
		record.F("Focus", "n/a"),
		record.F("Tone", "  "),
		record.F("Energy", 7.0),
		record.F("Row Number", "12"),
		record.F("Identity", "Steward"),
	)
}

func value(name string, weight any, desc string) *record.Record {
	fields := []record.Field{
		record.F("type", "values"),
		record.F("Value Name", name),
		record.F("Current Weight", weight),
	}
	if len(desc) > 0 {
		fields = append(fields, record.F("Description", desc))
	}
	return record.New(fields...)
}

func TestLatestStatePicksLastInserted(t *testing.T) {
	recs := make([]*record.Record, 10)
	for i := range recs {
		recs[i] = memory("event")
	}
	recs[2] = state("early")
	recs[7] = state("late")

	s := newSummarizer(t, recs)

	latest := s.LatestState()
	require.NotNil(t, latest)
	assert.Equal(t, "late", latest.String("Mood"))
}

func TestLatestStateKindIsCaseInsensitive(t *testing.T) {
	s := newSummarizer(t, []*record.Record{state("calm")}, WithStateKind("ECODIA"))
	assert.NotNil(t, s.LatestState())
}

func TestStateSummaryFiltersFields(t *testing.T) {
	s := newSummarizer(t, []*record.Record{memory("x"), state("curious")})
	assert.Equal(t, "Mood: curious\nIdentity: Steward", s.StateSummary())
}

func TestStateSummaryPlaceholder(t *testing.T) {
	s := newSummarizer(t, []*record.Record{memory("x")})
	assert.Equal(t, "[unknown personality state]", s.StateSummary())

	s = newSummarizer(t, nil, WithStatePlaceholder("[none]"))
	assert.Equal(t, "[none]", s.StateSummary())
}

func TestTopValuesTieKeepsInsertionOrder(t *testing.T) {
	s := newSummarizer(t, []*record.Record{
		value("Patience", 3.0, ""),
		value("Care", 9.0, "Look after living systems"),
		memory("x"),
		value("Rest", 1.0, ""),
		value("Courage", 9.0, ""),
	}, WithTopValues(2))

	top := s.TopValues(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Care", top[0].String("Value Name"))
	assert.Equal(t, "Courage", top[1].String("Value Name"))

	assert.Equal(t, "Care (9): Look after living systems; Courage (9)", s.ValuesSummary())
}

func TestValuesSummaryDescriptionThreshold(t *testing.T) {
	short := strings.Repeat("a", 49)
	exact := strings.Repeat("b", 50)

	s := newSummarizer(t, []*record.Record{
		value("Short", "2", short),
		value("Exact", "1", exact),
	})

	assert.Equal(t, "Short (2): "+short+"; Exact (1)", s.ValuesSummary())
}

func TestValuesSummaryWeightsAndNames(t *testing.T) {
	s := newSummarizer(t, []*record.Record{
		value("Missing", nil, ""),
		value("Text", "4.5", ""),
		value("Junk", "heavy", ""),
		record.New(record.F("type", "Values"), record.F("Current Weight", 2.0)),
	})

	assert.Equal(t, "Text (4.5); Unknown (2); Missing (); Junk (heavy)", s.ValuesSummary())
}

func TestValuesSummaryDefaultLimitAndEmpty(t *testing.T) {
	var recs []*record.Record
	for i := range 8 {
		recs = append(recs, value(string(rune('A'+i)), float64(i), ""))
	}
	s := newSummarizer(t, recs)
	assert.Len(t, s.TopValues(5), 5)
	assert.Equal(t, 4, strings.Count(s.ValuesSummary(), "; "))
	assert.True(t, strings.HasPrefix(s.ValuesSummary(), "H (7)"))

	s = newSummarizer(t, []*record.Record{memory("x")})
	assert.Equal(t, "", s.ValuesSummary())
	assert.Empty(t, s.TopValues(0))
}

func TestDiagnosticsUseRecordLines(t *testing.T) {
	s := newSummarizer(t, []*record.Record{
		state("calm").WithEmbedding([]float32{1}, "state text"),
		value("Care", 1.0, ""),
	})

	assert.Equal(t, []string{
		"state: state text",
		"value: type: values | Value Name: Care | Current Weight: 1",
	}, s.Diagnostics())
}

func TestParseWeightOrZero(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{"", 0},
		{"  7 ", 7},
		{"-2.5", -2.5},
		{"heavy", 0},
		{"NaN", 0},
		{math.Inf(1), 0},
		{3.0, 3},
		{float32(1.5), 1.5},
		{4, 4},
		{[]any{1.0}, 0},
		{true, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseWeightOrZero(c.in), "%v", c.in)
	}
}
