package source

import (
	"context"
	"errors"

	"github.com/w-h-a/soul/record"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
)

// Source returns the full raw record list in source order. Unreachable or
// malformed sources fail with ErrSourceUnavailable.
type Source interface {
	Fetch(ctx context.Context) ([]*record.Record, error)
}
