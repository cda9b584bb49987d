package ranker

import (
	"fmt"
	"math"
)

// CosineSimilarity returns dot(a,b) / (|a| * |b|). Vectors of different
// length fail with ErrDimensionMismatch and a zero-magnitude vector fails
// with ErrDegenerateVector; neither is coerced to a score.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	sim := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))

	// rounding can push identical or opposite vectors just past the bounds
	return math.Max(-1, math.Min(1, sim)), nil
}
