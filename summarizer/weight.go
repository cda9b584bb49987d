package summarizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseWeightOrZero reads a value weight. Missing, empty, unparsable and
// non-finite weights all count as 0 so a bad row sinks instead of failing
// the summary.
func ParseWeightOrZero(v any) float64 {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return 0
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		f = n
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}
