package record

import "strings"

// LineSeparator joins key/value pairs when a record is rendered on one line.
const LineSeparator = " | "

// FieldSet is a case-insensitive set of field names.
type FieldSet map[string]struct{}

func NewFieldSet(keys ...string) FieldSet {
	s := make(FieldSet, len(keys))
	for _, k := range keys {
		s[strings.ToLower(k)] = struct{}{}
	}
	return s
}

func (s FieldSet) Contains(key string) bool {
	_, ok := s[strings.ToLower(key)]
	return ok
}

// TechnicalFields are bookkeeping fields that never carry knowledge and are
// left out whenever a record is rendered for a prompt or an embedding.
var TechnicalFields = NewFieldSet(
	"Timestamp",
	KeyType,
	"id",
	"Last Modified",
	"Row Number",
	KeyVector,
	KeyEmbeddingText,
)

// Line renders a record as a single line of context. The embedding text is
// used verbatim when present so that the line matches what was scored.
func Line(r *Record) string {
	if text := r.EmbeddingText(); len(strings.TrimSpace(text)) > 0 {
		return text
	}

	parts := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			continue
		}
		parts = append(parts, pair.Key+": "+formatValue(pair.Value))
	}

	return strings.Join(parts, LineSeparator)
}
