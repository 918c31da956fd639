package formkit

import (
	"context"
	"fmt"
)

// oneOf requires the value to match one of the parameters. Matching uses the
// same loose equality as the array rules, so declaring OneOf(1, 2, 3) in Go
// matches the float64 2 a JSON payload delivers.
func oneOf(_ context.Context, in Input) error {
	if len(in.Params) == 0 {
		return badParams("OneOf", in.Field, "requires at least one allowed value")
	}
	for _, allowed := range in.Params {
		if equalValues(in.Value, allowed) {
			return nil
		}
	}
	return Fail("validation.one_of", fmt.Sprintf("must be one of %v", in.Params), map[string]any{
		"field":   in.Field,
		"allowed": fmt.Sprintf("%v", in.Params),
	})
}

// notOneOf rejects the value when it matches any parameter.
func notOneOf(_ context.Context, in Input) error {
	if len(in.Params) == 0 {
		return badParams("NotOneOf", in.Field, "requires at least one forbidden value")
	}
	for _, forbidden := range in.Params {
		if equalValues(in.Value, forbidden) {
			return Fail("validation.not_one_of", fmt.Sprintf("must not be %v", forbidden), map[string]any{
				"field":     in.Field,
				"forbidden": fmt.Sprintf("%v", forbidden),
			})
		}
	}
	return nil
}

func equals(_ context.Context, in Input) error {
	if len(in.Params) != 1 {
		return badParams("Equals", in.Field, "requires exactly one expected value")
	}
	if !equalValues(in.Value, in.Params[0]) {
		return Fail("validation.equals", fmt.Sprintf("must equal %v", in.Params[0]), map[string]any{
			"field":    in.Field,
			"expected": fmt.Sprintf("%v", in.Params[0]),
		})
	}
	return nil
}
