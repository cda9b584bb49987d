package refresh

import (
	"strings"

	"github.com/w-h-a/soul/record"
)

const textSeparator = " | "

var explicitTextFields = []string{record.KeyEmbeddingText, "summary", "Summary"}

// SelectText picks the text to embed for rec. An explicit embedding text or
// summary wins; otherwise every non-empty string field outside the technical
// set is joined as "Field: value". ok is false when nothing is left to embed.
func SelectText(rec *record.Record) (text string, ok bool) {
	for _, key := range explicitTextFields {
		if v := rec.String(key); len(strings.TrimSpace(v)) > 0 {
			return v, true
		}
	}

	var parts []string
	for _, key := range rec.Keys() {
		if record.TechnicalFields.Contains(key) {
			continue
		}
		v := rec.String(key)
		if len(strings.TrimSpace(v)) == 0 {
			continue
		}
		parts = append(parts, key+": "+v)
	}

	if len(parts) == 0 {
		return "", false
	}

	return strings.Join(parts, textSeparator), true
}
