package formkit

import (
	"context"
	"reflect"
)

// isMissing reports whether a value counts as absent: nil itself, a typed nil
// pointer or interface, or an untouched invalid reflect value.
func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// isRequired fails on absent values and empty strings. Empty slices and maps
// pass: an explicitly supplied empty collection is a present value, and the
// array length rules exist for callers who want to reject it.
func isRequired(_ context.Context, in Input) error {
	if isMissing(in.Value) {
		return Fail("validation.required", "field is required", map[string]any{
			"field": in.Field,
		})
	}
	if s, ok := in.Value.(string); ok && s == "" {
		return Fail("validation.required", "field is required", map[string]any{
			"field": in.Field,
		})
	}
	return nil
}

// nullable accepts absent values and skips the rest of the field's chain, so
// rules declared after it only apply when a value is actually present. Present
// values pass through untouched to the remaining rules.
func nullable(_ context.Context, in Input) error {
	if isMissing(in.Value) {
		return SkipRemaining
	}
	return nil
}
