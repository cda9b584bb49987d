package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/w-h-a/soul/corpus"
	"github.com/w-h-a/soul/ranker"
)

// memoryRanker scans every record of the store on each query. Ties keep
// corpus order so identical inputs always give identical output.
type memoryRanker struct {
	options ranker.Options
	store   *corpus.Store
}

func (r *memoryRanker) TopK(ctx context.Context, query []float32, k int) ([]ranker.Match, error) {
	if k <= 0 {
		return []ranker.Match{}, nil
	}

	candidates := make([]ranker.Match, 0, r.store.Len())

	for i, rec := range r.store.Records() {
		if !rec.HasVector() {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		score, err := ranker.CosineSimilarity(query, rec.Vector())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		candidates = append(candidates, ranker.Match{
			Record: rec,
			Score:  score,
			Index:  i,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	return candidates, nil
}

func (r *memoryRanker) Eligible() int {
	n := 0
	for _, rec := range r.store.Records() {
		if rec.HasVector() {
			n++
		}
	}
	return n
}

func NewRanker(opts ...ranker.Option) ranker.Ranker {
	options := ranker.NewOptions(opts...)

	if options.Store == nil {
		panic("corpus store is required")
	}

	r := &memoryRanker{
		options: options,
		store:   options.Store,
	}

	return r
}
