package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/w-h-a/soul/record"
	"github.com/w-h-a/soul/source"
)

type httpSource struct {
	options source.Options
	client  *http.Client
}

func (s *httpSource) Fetch(ctx context.Context) ([]*record.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.options.Location, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	rsp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", source.ErrSourceUnavailable, err)
	}
	defer rsp.Body.Close()

	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %s", source.ErrSourceUnavailable, rsp.Status)
	}

	data, err := io.ReadAll(rsp.Body)
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

	s := &httpSource{
		options: options,
		client:  &http.Client{Timeout: options.Timeout},
	}

	return s
}
