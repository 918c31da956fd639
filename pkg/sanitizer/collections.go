package sanitizer

import "reflect"

// Compact drops nil and empty-string elements from a []any. JSON-decoded form
// payloads deliver arrays as []any, which is why only that shape is handled.
func Compact() func(any) any {
	return Lift(func(items []any) []any {
		out := make([]any, 0, len(items))
		for _, item := range items {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok && s == "" {
				continue
			}
			out = append(out, item)
		}
		return out
	})
}

// Dedup removes structurally equal duplicates from a []any, keeping the first
// occurrence of each element in order.
func Dedup() func(any) any {
	return Lift(func(items []any) []any {
		out := make([]any, 0, len(items))
		for _, item := range items {
			dup := false
			for _, kept := range out {
				if reflect.DeepEqual(kept, item) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, item)
			}
		}
		return out
	})
}

// Each applies a transform to every element of a []any.
func Each(transform func(any) any) func(any) any {
	return Lift(func(items []any) []any {
		if transform == nil {
			return items
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = transform(item)
		}
		return out
	})
}
