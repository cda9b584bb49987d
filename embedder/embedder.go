package embedder

import (
	"context"
	"errors"
)

var (
	ErrEmbeddingFailed = errors.New("embedding failed")
)

// Embedder turns text into a fixed-length vector. Failures wrap
// ErrEmbeddingFailed.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
