package formkit

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// RuleFunc checks a single constraint against a single value. A nil return
// means the value passed. Any non-nil return (except SkipRemaining) means the
// rule failed and stops the field's chain.
//
// Cheap in-memory checks and expensive lookups share this one signature, so a
// chain can mix them freely; rules that hit the network or a database must
// honor ctx. A RuleFunc must never mutate the value it receives.
type RuleFunc func(ctx context.Context, in Input) error

// Input carries everything a rule needs to evaluate one value.
type Input struct {
	// Field is the property name under validation. Ad hoc values validated
	// outside a schema report the synthetic name "value".
	Field string

	// Value is the working copy of the value under validation, after any
	// sanitizers attached to the field have run.
	Value any

	// Params holds the parameters bound to this rule reference, in
	// declaration order. Helpers such as intParam coerce them.
	Params []any

	// Meta is the opaque caller context supplied via WithMeta. Rules that
	// need request-scoped data (current user, tenant) read it here.
	Meta any
}

// SkipRemaining is returned by a rule to accept the value and skip the rest
// of the field's chain. Nullable uses it to make every later rule optional
// when no value is present. It is a control signal, never a failure.
var SkipRemaining = errors.New("skip remaining rules")

// RuleError is a rule failure carrying translation metadata alongside the
// default English message. Rules built with Fail produce it; plain errors
// returned from custom rules are wrapped into one with only Message set.
type RuleError struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *RuleError) Error() string {
	return e.Message
}

// Fail builds the failure a rule returns: a default message plus the
// translation key and placeholder values a Translator needs to localize it.
func Fail(key, message string, values map[string]any) *RuleError {
	return &RuleError{
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// Translator localizes failure messages. The i18n package provides the full
// implementation; any type with a compatible T method works. Implementations
// are expected to fall back to the key itself for missing translations, which
// the aggregator detects and ignores in favor of the default message.
type Translator interface {
	T(lang, key string, args ...string) string
}

// translationArgs flattens placeholder values into the alternating key-value
// string pairs a Translator consumes, sorted by key so the rendered message
// is deterministic.
func translationArgs(values map[string]any) []string {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprintf("%v", values[k]))
	}
	return args
}
