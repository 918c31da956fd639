package formkit

import (
	"context"
	"fmt"
	"reflect"
)

// asArray returns a reflect view of the value when it is a slice or array.
func asArray(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv, true
	}
	return reflect.Value{}, false
}

func notArray(field string) *RuleError {
	return Fail("validation.array", "must be an array", map[string]any{
		"field": field,
	})
}

// isArray passes for any slice or array value, including empty ones, and
// fails for everything else.
func isArray(_ context.Context, in Input) error {
	if _, ok := asArray(in.Value); !ok {
		return notArray(in.Field)
	}
	return nil
}

func arrayMinLength(_ context.Context, in Input) error {
	min, ok := intParam(in.Params, 0)
	if !ok || min < 0 {
		return badParams("ArrayMinLength", in.Field, "requires a non-negative integer")
	}
	rv, ok := asArray(in.Value)
	if !ok {
		return notArray(in.Field)
	}
	if rv.Len() < min {
		return Fail("validation.array_min", fmt.Sprintf("must have at least %d items", min), map[string]any{
			"field": in.Field,
			"min":   min,
		})
	}
	return nil
}

func arrayMaxLength(_ context.Context, in Input) error {
	max, ok := intParam(in.Params, 0)
	if !ok || max < 0 {
		return badParams("ArrayMaxLength", in.Field, "requires a non-negative integer")
	}
	rv, ok := asArray(in.Value)
	if !ok {
		return notArray(in.Field)
	}
	if rv.Len() > max {
		return Fail("validation.array_max", fmt.Sprintf("must have at most %d items", max), map[string]any{
			"field": in.Field,
			"max":   max,
		})
	}
	return nil
}

func arrayLength(_ context.Context, in Input) error {
	exact, ok := intParam(in.Params, 0)
	if !ok || exact < 0 {
		return badParams("ArrayLength", in.Field, "requires a non-negative integer")
	}
	rv, ok := asArray(in.Value)
	if !ok {
		return notArray(in.Field)
	}
	if rv.Len() != exact {
		return Fail("validation.array_len", fmt.Sprintf("must have exactly %d items", exact), map[string]any{
			"field": in.Field,
			"count": exact,
		})
	}
	return nil
}

// arrayContains requires every parameter to be present in the value under
// structural equality. An empty parameter list always fails: a containment
// requirement with nothing to contain is a schema mistake, and silently
// passing would hide it.
func arrayContains(_ context.Context, in Input) error {
	if len(in.Params) == 0 {
		return badParams("ArrayContains", in.Field, "requires at least one expected item")
	}
	rv, ok := asArray(in.Value)
	if !ok {
		return notArray(in.Field)
	}
	for _, want := range in.Params {
		found := false
		for i := 0; i < rv.Len(); i++ {
			if equalValues(rv.Index(i).Interface(), want) {
				found = true
				break
			}
		}
		if !found {
			return Fail("validation.array_contains", fmt.Sprintf("must contain %v", want), map[string]any{
				"field":   in.Field,
				"missing": fmt.Sprintf("%v", want),
			})
		}
	}
	return nil
}

// arrayUnique fails on the first structurally-equal pair found in scan order;
// the rest of the array is never examined.
func arrayUnique(_ context.Context, in Input) error {
	rv, ok := asArray(in.Value)
	if !ok {
		return notArray(in.Field)
	}
	for i := 0; i < rv.Len(); i++ {
		for j := i + 1; j < rv.Len(); j++ {
			if equalValues(rv.Index(i).Interface(), rv.Index(j).Interface()) {
				return Fail("validation.array_unique", fmt.Sprintf("contains duplicate item %v", rv.Index(i).Interface()), map[string]any{
					"field":     in.Field,
					"duplicate": fmt.Sprintf("%v", rv.Index(i).Interface()),
				})
			}
		}
	}
	return nil
}
