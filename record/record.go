package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	KeyType          = "type"
	KeyVector        = "vector"
	KeyEmbeddingText = "embedding_text"
)

var (
	ErrNotObject     = errors.New("record is not a JSON object")
	ErrInvalidVector = errors.New("record vector is not a numeric array")
)

// Field is a single key/value pair used to build a Record in order.
type Field struct {
	Key   string
	Value any
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Record is one corpus entry. Fields keep the order they were decoded or
// built in. A Record is never mutated after construction; the With* methods
// return copies.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
	vector []float32
}

func New(fields ...Field) *Record {
	r := &Record{
		fields: orderedmap.New[string, any](),
	}
	for _, f := range fields {
		if f.Key == KeyVector {
			if v, err := toVector(f.Value); err == nil {
				r.vector = v
			}
			continue
		}
		r.fields.Set(f.Key, f.Value)
	}
	return r
}

func (r *Record) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (r *Record) Get(key string) (any, bool) {
	return r.fields.Get(key)
}

func (r *Record) Has(key string) bool {
	v, ok := r.fields.Get(key)
	return ok && v != nil
}

// String returns the value of key when it holds a string, otherwise "".
func (r *Record) String(key string) string {
	v, ok := r.fields.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Number returns the value of key as a float64. Numeric strings are parsed.
func (r *Record) Number(key string) (float64, bool) {
	v, ok := r.fields.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// Text renders the value of key as it would appear in a prompt.
func (r *Record) Text(key string) string {
	v, ok := r.fields.Get(key)
	if !ok {
		return ""
	}
	return formatValue(v)
}

func (r *Record) Kind() string {
	return strings.ToLower(strings.TrimSpace(r.String(KeyType)))
}

func (r *Record) Vector() []float32 {
	return r.vector
}

func (r *Record) HasVector() bool {
	return r.vector != nil
}

func (r *Record) EmbeddingText() string {
	return r.String(KeyEmbeddingText)
}

func (r *Record) Clone() *Record {
	cpy := &Record{
		fields: orderedmap.New[string, any](orderedmap.WithCapacity[string, any](r.fields.Len())),
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		cpy.fields.Set(pair.Key, pair.Value)
	}
	if r.vector != nil {
		cpy.vector = make([]float32, len(r.vector))
		copy(cpy.vector, r.vector)
	}
	return cpy
}

func (r *Record) WithField(key string, value any) *Record {
	cpy := r.Clone()
	if key == KeyVector {
		if v, err := toVector(value); err == nil {
			cpy.vector = v
		}
		return cpy
	}
	cpy.fields.Set(key, value)
	return cpy
}

// WithEmbedding returns a copy carrying vector and the exact text it was
// computed from.
func (r *Record) WithEmbedding(vector []float32, text string) *Record {
	cpy := r.Clone()
	cpy.fields.Set(KeyEmbeddingText, text)
	cpy.vector = make([]float32, len(vector))
	copy(cpy.vector, vector)
	return cpy
}

func (r *Record) MarshalJSON() ([]byte, error) {
	out := orderedmap.New[string, any](orderedmap.WithCapacity[string, any](r.fields.Len() + 1))
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	if r.vector != nil {
		out.Set(KeyVector, r.vector)
	}
	return out.MarshalJSON()
}

func (r *Record) UnmarshalJSON(data []byte) error {
	return r.decode(data, true)
}

func (r *Record) decode(data []byte, keepVector bool) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrNotObject
	}

	fields := orderedmap.New[string, any]()
	if err := fields.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("%w: %w", ErrNotObject, err)
	}

	var vector []float32
	if raw, ok := fields.Get(KeyVector); ok {
		fields.Delete(KeyVector)
		if raw != nil && keepVector {
			v, err := toVector(raw)
			if err != nil {
				return err
			}
			vector = v
		}
	}

	r.fields = fields
	r.vector = vector

	return nil
}

// DecodeList decodes a JSON array of record objects, keeping array order.
func DecodeList(data []byte) ([]*Record, error) {
	return decodeList(data, true)
}

// DecodeRawList is DecodeList for raw source exports. Any vector field is
// dropped unparsed.
func DecodeRawList(data []byte) ([]*Record, error) {
	return decodeList(data, false)
}

func decodeList(data []byte, keepVector bool) ([]*Record, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("expected a JSON array of records: %w", err)
	}

	records := make([]*Record, 0, len(raws))
	for i, raw := range raws {
		rec := &Record{}
		if err := rec.decode(raw, keepVector); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func toVector(raw any) ([]float32, error) {
	switch v := raw.(type) {
	case []float32:
		cpy := make([]float32, len(v))
		copy(cpy, v)
		return cpy, nil
	case []float64:
		out := make([]float32, len(v))
		for i, f := range v {
			out[i] = float32(f)
		}
		return out, nil
	case []any:
		out := make([]float32, len(v))
		for i, item := range v {
			f, ok := item.(float64)
			if !ok {
				return nil, ErrInvalidVector
			}
			out[i] = float32(f)
		}
		return out, nil
	}
	return nil, ErrInvalidVector
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
