package summarizer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/w-h-a/soul/corpus"
	"github.com/w-h-a/soul/record"
)

const valueSeparator = "; "

// Summarizer derives the personality and values snapshot from a corpus.
// It only reads the store and is safe for concurrent use.
type Summarizer struct {
	options Options
	store   *corpus.Store
}

// LatestState returns the most recently inserted state record, or nil.
func (s *Summarizer) LatestState() *record.Record {
	kind := strings.ToLower(s.options.StateKind)
	for i := s.store.Len() - 1; i >= 0; i-- {
		rec := s.store.At(i)
		if rec.Kind() == kind {
			return rec
		}
	}
	return nil
}

// StateSummary renders the latest state record as "field: value" lines, or
// the placeholder when the corpus has no state record.
func (s *Summarizer) StateSummary() string {
	rec := s.LatestState()
	if rec == nil {
		return s.options.StatePlaceholder
	}
	return strings.Join(s.stateLines(rec), "\n")
}

func (s *Summarizer) stateLines(rec *record.Record) []string {
	var lines []string
	for _, key := range rec.Keys() {
		if record.TechnicalFields.Contains(key) {
			continue
		}
		v := rec.String(key)
		if len(strings.TrimSpace(v)) == 0 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(v), s.options.UnknownSentinel) {
			continue
		}
		lines = append(lines, key+": "+v)
	}
	return lines
}

// TopValues returns up to n value records ordered by descending weight.
// Equal weights keep insertion order.
func (s *Summarizer) TopValues(n int) []*record.Record {
	if n <= 0 {
		return nil
	}

	kind := strings.ToLower(s.options.ValueKind)
	var values []*record.Record
	for _, rec := range s.store.Records() {
		if rec.Kind() == kind {
			values = append(values, rec)
		}
	}

	sort.SliceStable(values, func(i, j int) bool {
		return s.weight(values[i]) > s.weight(values[j])
	})

	if len(values) > n {
		values = values[:n]
	}

	return values
}

// ValuesSummary renders the top values joined by "; ". It is empty when the
// corpus has no value records.
func (s *Summarizer) ValuesSummary() string {
	values := s.TopValues(s.options.TopValues)
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, s.renderValue(v))
	}
	return strings.Join(out, valueSeparator)
}

func (s *Summarizer) renderValue(rec *record.Record) string {
	name := rec.Text(s.options.NameField)
	if len(name) == 0 {
		name = s.options.DefaultName
	}

	summary := fmt.Sprintf("%s (%s)", name, rec.Text(s.options.WeightField))

	desc := rec.Text(s.options.DescriptionField)
	if len(desc) > 0 && utf8.RuneCountInString(desc) < s.options.MaxDescriptionLen {
		summary += ": " + desc
	}

	return summary
}

func (s *Summarizer) weight(rec *record.Record) float64 {
	v, _ := rec.Get(s.options.WeightField)
	return ParseWeightOrZero(v)
}

// Diagnostics lists the records behind the summary, rendered the same way
// as retrieval matches.
func (s *Summarizer) Diagnostics() []string {
	var out []string
	if rec := s.LatestState(); rec != nil {
		out = append(out, "state: "+record.Line(rec))
	}
	for _, v := range s.TopValues(s.options.TopValues) {
		out = append(out, "value: "+record.Line(v))
	}
	return out
}

func New(store *corpus.Store, opts ...Option) *Summarizer {
	if store == nil {
		panic("corpus store is required")
	}

	options := NewOptions(opts...)

	return &Summarizer{
		options: options,
		store:   store,
	}
}
