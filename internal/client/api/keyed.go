package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// decodeKeyedList decodes a list endpoint body of the form
//
//	{"3": {...}, "7": {...}}
//
// into an ordered slice. The backend keys collections by storage key rather
// than returning an array; each key is merged into its record via set.
// Numeric keys sort numerically, anything else lexicographically after them.
func decodeKeyedList[T any](body []byte, set func(item *T, key string)) ([]T, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode keyed list: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	out := make([]T, 0, len(keys))
	for _, k := range keys {
		var item T
		if err := json.Unmarshal(raw[k], &item); err != nil {
			return nil, fmt.Errorf("decode keyed list item %q: %w", k, err)
		}
		set(&item, k)
		out = append(out, item)
	}
	return out, nil
}
