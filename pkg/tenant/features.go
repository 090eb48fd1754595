package tenant

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// Wildcard is the feature key that enables every feature for a plan.
const Wildcard = "all"

// FeatureSet maps feature names to their enabled state for a subscription.
// A nil set grants nothing.
type FeatureSet map[string]bool

// Enabled reports whether the named feature is available, honouring the
// wildcard key.
func (fs FeatureSet) Enabled(name string) bool {
	if fs == nil {
		return false
	}
	return fs[Wildcard] || fs[name]
}

// ErrInvalidFeatureSet is returned when a stored feature set cannot be decoded.
var ErrInvalidFeatureSet = errors.New("invalid feature set")

// ParseFeatureSet decodes a serialized feature set as stored in the
// subscriptions table. Historic rows come in two shapes: a JSON object, or a
// JSON string containing an encoded object (double-encoded text columns).
// Both are accepted here so callers never re-parse per lookup. Empty input
// and JSON null decode to a nil set.
func ParseFeatureSet(raw []byte) (FeatureSet, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, errors.Join(ErrInvalidFeatureSet, err)
		}
		return ParseFeatureSet([]byte(inner))
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Join(ErrInvalidFeatureSet, err)
	}

	fs := make(FeatureSet, len(decoded))
	for name, v := range decoded {
		fs[name] = truthy(v)
	}
	return fs, nil
}

// truthy mirrors the loose boolean semantics of the legacy rows, where flags
// were occasionally stored as numbers or strings instead of booleans.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		if val == "" || val == "false" {
			return false
		}
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			return n != 0
		}
		return true
	default:
		return false
	}
}
