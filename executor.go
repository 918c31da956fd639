package formkit

import (
	"context"
	"errors"
	"fmt"
)

// fieldOutcome records one field's evaluation: the sanitized working copy and
// the first failing rule, if any. Outcomes are built fresh on every call and
// never shared between calls, so repeated validation stays stateless.
type fieldOutcome struct {
	field  string
	value  any
	failed bool
	rule   string
	err    *RuleError
}

// runChain evaluates a field's rule chain in declared order with fail-fast
// semantics: the first non-passing rule records the failure and the rest of
// the chain never runs. Cheap checks and expensive lookups share the same
// sequential path, so an expensive rule placed after a cheap one is guaranteed
// not to run when the cheap one fails.
func runChain(ctx context.Context, reg *Registry, field string, value any, refs []Ref, meta any) fieldOutcome {
	out := fieldOutcome{field: field, value: value}

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			out.failed = true
			out.rule = ref.Name()
			out.err = Fail("validation.canceled", "validation canceled", map[string]any{
				"field": field,
			})
			return out
		}

		res, ok := resolve(reg, ref)
		if !ok {
			// Unknown rule names are reported through the result rather than
			// panicking, so a stale schema degrades into a failed validation.
			out.failed = true
			out.rule = res.name
			out.err = Fail("validation.unknown_rule", fmt.Sprintf("unknown validation rule %q", res.name), map[string]any{
				"field": field,
				"rule":  res.name,
			})
			return out
		}

		err := res.fn(ctx, Input{Field: field, Value: value, Params: res.params, Meta: meta})
		if err == nil {
			continue
		}
		if errors.Is(err, SkipRemaining) {
			return out
		}

		out.failed = true
		out.rule = res.name
		out.err = asRuleError(err)
		return out
	}

	return out
}

// asRuleError normalizes arbitrary rule errors into RuleError so custom rules
// can return plain errors and still flow through aggregation and translation.
func asRuleError(err error) *RuleError {
	var re *RuleError
	if errors.As(err, &re) {
		return re
	}
	return &RuleError{Message: err.Error()}
}
