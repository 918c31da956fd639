package formkit

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"unicode/utf8"
)

// lengthOf measures whatever notion of length the value carries: runes for
// strings, element count for slices, arrays and maps. The second result is
// false for values with no length at all.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func noLength(field string) *RuleError {
	return Fail("validation.length", "value has no length", map[string]any{
		"field": field,
	})
}

func minLength(_ context.Context, in Input) error {
	min, ok := intParam(in.Params, 0)
	if !ok || min < 0 {
		return badParams("MinLength", in.Field, "requires a non-negative integer")
	}
	n, ok := lengthOf(in.Value)
	if !ok {
		return noLength(in.Field)
	}
	if n < min {
		return Fail("validation.min_length", fmt.Sprintf("must be at least %d characters long", min), map[string]any{
			"field": in.Field,
			"min":   min,
		})
	}
	return nil
}

func maxLength(_ context.Context, in Input) error {
	max, ok := intParam(in.Params, 0)
	if !ok || max < 0 {
		return badParams("MaxLength", in.Field, "requires a non-negative integer")
	}
	n, ok := lengthOf(in.Value)
	if !ok {
		return noLength(in.Field)
	}
	if n > max {
		return Fail("validation.max_length", fmt.Sprintf("must be at most %d characters long", max), map[string]any{
			"field": in.Field,
			"max":   max,
		})
	}
	return nil
}

func exactLength(_ context.Context, in Input) error {
	exact, ok := intParam(in.Params, 0)
	if !ok || exact < 0 {
		return badParams("Length", in.Field, "requires a non-negative integer")
	}
	n, ok := lengthOf(in.Value)
	if !ok {
		return noLength(in.Field)
	}
	if n != exact {
		return Fail("validation.exact_length", fmt.Sprintf("must be exactly %d characters long", exact), map[string]any{
			"field": in.Field,
			"count": exact,
		})
	}
	return nil
}

// matches compiles its pattern parameter on every invocation. Schemas that
// validate in a hot loop should register a custom rule with a precompiled
// regexp instead.
func matches(_ context.Context, in Input) error {
	pattern, ok := stringParam(in.Params, 0)
	if !ok || pattern == "" {
		return badParams("Matches", in.Field, "requires a pattern string")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return badParams("Matches", in.Field, fmt.Sprintf("invalid pattern %q", pattern))
	}
	s, ok := in.Value.(string)
	if !ok {
		return Fail("validation.pattern", "must be a string", map[string]any{
			"field": in.Field,
		})
	}
	if !re.MatchString(s) {
		return Fail("validation.pattern", fmt.Sprintf("must match pattern %s", pattern), map[string]any{
			"field":   in.Field,
			"pattern": pattern,
		})
	}
	return nil
}
