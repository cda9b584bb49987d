package ranker

import (
	"context"
	"errors"

	"github.com/w-h-a/soul/record"
)

var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrDegenerateVector  = errors.New("vector has zero magnitude")
)

type Match struct {
	Record *record.Record
	Score  float64
	// Index is the record's position in the corpus.
	Index int
}

// Ranker returns the k records most similar to query, best first. Records
// without a vector never match.
type Ranker interface {
	TopK(ctx context.Context, query []float32, k int) ([]Match, error)
	// Eligible is the number of records that can appear in a result.
	Eligible() int
}

func Records(matches []Match) []*record.Record {
	out := make([]*record.Record, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Record)
	}
	return out
}
