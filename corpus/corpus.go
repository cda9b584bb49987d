package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/w-h-a/soul/record"
)

var (
	ErrCorruptCorpus = errors.New("corrupt corpus")
)

// Store is an immutable, ordered snapshot of records. Order is the order of
// the source fetch and is significant for "latest of kind" lookups.
type Store struct {
	records   []*record.Record
	dimension int
}

func (s *Store) Len() int {
	return len(s.records)
}

// Dimension is the shared vector length, or 0 when no record has a vector.
func (s *Store) Dimension() int {
	return s.dimension
}

// Records returns the records in insertion order. The slice is a copy.
func (s *Store) Records() []*record.Record {
	out := make([]*record.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) At(i int) *record.Record {
	return s.records[i]
}

func New(records []*record.Record) (*Store, error) {
	dim, seen := 0, false
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: record %d is empty", ErrCorruptCorpus, i)
		}
		if !rec.HasVector() {
			continue
		}
		n := len(rec.Vector())
		if n == 0 {
			return nil, fmt.Errorf("%w: record %d has an empty vector", ErrCorruptCorpus, i)
		}
		if !seen {
			dim, seen = n, true
			continue
		}
		if n != dim {
			return nil, fmt.Errorf("%w: record %d has %d dimensions, expected %d", ErrCorruptCorpus, i, n, dim)
		}
	}

	cpy := make([]*record.Record, len(records))
	copy(cpy, records)

	return &Store{
		records:   cpy,
		dimension: dim,
	}, nil
}

func Load(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptCorpus, err)
	}

	records, err := record.DecodeList(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptCorpus, err)
	}

	return New(records)
}

func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptCorpus, err)
	}
	defer f.Close()

	return Load(f)
}

// Encode writes records as an indented JSON array.
func Encode(w io.Writer, records []*record.Record) error {
	if records == nil {
		records = []*record.Record{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err = buf.WriteTo(w)
	return err
}

// WriteFile replaces path with a snapshot of records. The snapshot is
// written to a temporary file in the same directory and renamed into place,
// so readers see either the old file or the complete new one.
func WriteFile(path string, records []*record.Record) (err error) {
	if _, err := New(records); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = Encode(tmp, records); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync snapshot: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
