package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/w-h-a/soul/record"
)

var (
	ErrPublishFailed = errors.New("publish failed")
)

// Publisher replaces an external copy of the corpus snapshot with records.
type Publisher interface {
	Publish(ctx context.Context, records []*record.Record) (int, error)
}

// Rows lays records out as a table. The header is the first record's field
// order with the vector last, and vectors are written as JSON arrays.
func Rows(records []*record.Record) ([][]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: snapshot is empty", ErrPublishFailed)
	}

	header := records[0].Keys()
	if records[0].HasVector() {
		header = append(header, record.KeyVector)
	}

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)

	for _, rec := range records {
		row := make([]string, len(header))
		for i, key := range header {
			if key != record.KeyVector {
				row[i] = rec.Text(key)
				continue
			}
			if !rec.HasVector() {
				continue
			}
			b, err := json.Marshal(rec.Vector())
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrPublishFailed, err)
			}
			row[i] = string(b)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
