package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/w-h-a/soul/publisher"
	"github.com/w-h-a/soul/record"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type sheetsPublisher struct {
	options publisher.Options
	client  *sheets.Service
}

func (p *sheetsPublisher) Publish(ctx context.Context, records []*record.Record) (int, error) {
	rows, err := publisher.Rows(records)
	if err != nil {
		return 0, err
	}

	if p.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.options.Timeout)
		defer cancel()
	}

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		values = append(values, cells)
	}

	if _, err := p.client.Spreadsheets.Values.
		Clear(p.options.Location, p.options.Sheet, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do(); err != nil {
		return 0, fmt.Errorf("%w: clear %s: %w", publisher.ErrPublishFailed, p.options.Sheet, err)
	}

	if _, err := p.client.Spreadsheets.Values.
		Update(p.options.Location, p.options.Sheet+"!A1", &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return 0, fmt.Errorf("%w: update %s: %w", publisher.ErrPublishFailed, p.options.Sheet, err)
	}

	slog.InfoContext(ctx, "published snapshot", "sheet", p.options.Sheet, "rows", len(records))

	return len(records), nil
}

func NewPublisher(opts ...publisher.Option) publisher.Publisher {
	options := publisher.NewOptions(opts...)

	if len(options.Location) == 0 {
		panic("spreadsheet id is required")
	}

	p := &sheetsPublisher{
		options: options,
	}

	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if len(options.Credentials) > 0 {
		clientOpts = append(clientOpts, option.WithCredentialsJSON(options.Credentials))
	}
	if len(options.BaseURL) > 0 {
		clientOpts = append(clientOpts, option.WithEndpoint(options.BaseURL))
		if len(options.Credentials) == 0 {
			clientOpts = append(clientOpts, option.WithoutAuthentication())
		}
	}

	client, err := sheets.NewService(options.Context, clientOpts...)
	if err != nil {
		detail := "failed to create sheets client"
		slog.ErrorContext(options.Context, detail, "error", err)
		panic(detail)
	}

	p.client = client

	return p
}
