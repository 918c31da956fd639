package formkit

import (
	"context"
	"fmt"
)

func notNumber(field string) *RuleError {
	return Fail("validation.number", "must be a number", map[string]any{
		"field": field,
	})
}

// isNumber passes for any Go numeric type, including named types. Numeric
// strings fail: string-to-number coercion belongs in a sanitizer, not a rule.
func isNumber(_ context.Context, in Input) error {
	if _, ok := toFloat(in.Value); !ok {
		return notNumber(in.Field)
	}
	return nil
}

func minNumber(_ context.Context, in Input) error {
	min, ok := floatParam(in.Params, 0)
	if !ok {
		return badParams("Min", in.Field, "requires a numeric minimum")
	}
	n, ok := toFloat(in.Value)
	if !ok {
		return notNumber(in.Field)
	}
	if n < min {
		return Fail("validation.min", fmt.Sprintf("must be at least %v", in.Params[0]), map[string]any{
			"field": in.Field,
			"min":   in.Params[0],
		})
	}
	return nil
}

func maxNumber(_ context.Context, in Input) error {
	max, ok := floatParam(in.Params, 0)
	if !ok {
		return badParams("Max", in.Field, "requires a numeric maximum")
	}
	n, ok := toFloat(in.Value)
	if !ok {
		return notNumber(in.Field)
	}
	if n > max {
		return Fail("validation.max", fmt.Sprintf("must be at most %v", in.Params[0]), map[string]any{
			"field": in.Field,
			"max":   in.Params[0],
		})
	}
	return nil
}

func betweenNumber(_ context.Context, in Input) error {
	lo, okLo := floatParam(in.Params, 0)
	hi, okHi := floatParam(in.Params, 1)
	if !okLo || !okHi || lo > hi {
		return badParams("Between", in.Field, "requires numeric bounds lo <= hi")
	}
	n, ok := toFloat(in.Value)
	if !ok {
		return notNumber(in.Field)
	}
	if n < lo || n > hi {
		return Fail("validation.between", fmt.Sprintf("must be between %v and %v", in.Params[0], in.Params[1]), map[string]any{
			"field": in.Field,
			"min":   in.Params[0],
			"max":   in.Params[1],
		})
	}
	return nil
}
