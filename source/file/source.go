package file

import (
	"context"
	"fmt"
	"os"

	"github.com/w-h-a/soul/record"
	"github.com/w-h-a/soul/source"
)

// fileSource reads a JSON export of the data source from disk.
type fileSource struct {
	options source.Options
}

func (s *fileSource) Fetch(ctx context.Context) ([]*record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.options.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrSourceUnavailable, err)
	}

	records, err := record.DecodeRawList(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrSourceUnavailable, err)
	}

	return records, nil
}

func NewSource(opts ...source.Option) source.Source {
	options := source.NewOptions(opts...)

	if len(options.Location) == 0 {
		panic("source location is required")
	}

	return &fileSource{
		options: options,
	}
}
