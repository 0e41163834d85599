package unique

import (
	"encoding/json"
	"fmt"
)

// JSONKey is the default Normalizer: it encodes the value as JSON so that
// results are compared structurally rather than by identity. Values that
// cannot be JSON-encoded (channels, funcs) fall back to their Go-syntax
// representation, which is still deterministic for a given value.
func JSONKey[T any](v T) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}

// Identity is the no-op Normalizer for string results: the raw string is
// its own key.
func Identity(s string) string { return s }
