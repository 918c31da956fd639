package formkit

import (
	"context"
	"time"

	"github.com/dmitrymomot/formkit/pkg/async"
)

// adHocField is the synthetic field name Validate reports for values checked
// outside a schema.
const adHocField = "value"

type settings struct {
	registry   *Registry
	translator Translator
	locale     string
	meta       any
	concurrent bool
}

// Option adjusts a single validation call. Options never mutate shared state:
// two goroutines validating with different options do not affect each other.
type Option func(*settings)

// WithRegistry runs the call against an isolated registry instead of the
// package default. Tests use it to avoid cross-test registration leaks.
func WithRegistry(reg *Registry) Option {
	return func(s *settings) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithTranslator localizes failure messages through the given translator.
// Entries the translator cannot resolve keep their default English message.
func WithTranslator(t Translator) Option {
	return func(s *settings) {
		if t != nil {
			s.translator = t
		}
	}
}

// WithLocale sets the language passed to the translator. Without a translator
// it has no effect.
func WithLocale(locale string) Option {
	return func(s *settings) {
		if locale != "" {
			s.locale = locale
		}
	}
}

// WithMeta attaches opaque caller context delivered to every rule through
// Input.Meta. Custom rules use it for request-scoped data such as the current
// tenant or user.
func WithMeta(meta any) Option {
	return func(s *settings) {
		s.meta = meta
	}
}

// WithConcurrentFields evaluates schema fields in parallel. Rules within one
// field still run strictly in order, and results are merged back in field
// declaration order, so the returned Result is byte-for-byte the same as the
// sequential one. Worth it only when several fields carry expensive rules.
func WithConcurrentFields() Option {
	return func(s *settings) {
		s.concurrent = true
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		registry: defaultRegistry,
		locale:   "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fieldError folds a failing outcome into the caller-facing error entry,
// localizing the message when a translator is configured. Translators fall
// back to the key for unknown entries; that fallback is detected and the
// default message kept instead.
func (s *settings) fieldError(out fieldOutcome) FieldError {
	fe := FieldError{
		Field:             out.field,
		Rule:              out.rule,
		Message:           out.err.Message,
		TranslationKey:    out.err.TranslationKey,
		TranslationValues: out.err.TranslationValues,
	}
	if s.translator != nil && fe.TranslationKey != "" {
		msg := s.translator.T(s.locale, fe.TranslationKey, translationArgs(fe.TranslationValues)...)
		if msg != "" && msg != fe.TranslationKey {
			fe.Message = msg
		}
	}
	return fe
}

// Validate checks a single ad hoc value against an ordered rule chain. The
// chain fails fast: rules after the first failure never run. Expected
// failures are reported through the result, never as an error or panic, so
// the call has no error return. Result.Data stays nil; there is no payload to
// echo for a lone value.
func Validate(ctx context.Context, value any, refs []Ref, opts ...Option) *Result {
	s := newSettings(opts)
	start := time.Now()

	res := &Result{Success: true}
	out := runChain(ctx, s.registry, adHocField, value, refs, s.meta)
	if out.failed {
		res.Success = false
		res.Errors = []FieldError{s.fieldError(out)}
		res.FailureCount = 1
	}

	res.Duration = time.Since(start)
	return res
}

// ValidateSchema checks a data map against a schema, field by field in
// declaration order. The returned error is non-nil only for programming
// mistakes (nil schema, nil data); validation failures always come back
// inside the Result.
//
// On success Data echoes the input with each declared field replaced by its
// sanitized working copy; undeclared keys pass through untouched. On failure
// Data is nil regardless of how many fields passed before the first failure.
func ValidateSchema(ctx context.Context, schema *Schema, data map[string]any, opts ...Option) (*Result, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if data == nil {
		return nil, ErrNilData
	}

	s := newSettings(opts)
	start := time.Now()

	var outcomes []fieldOutcome
	if s.concurrent && len(schema.order) > 1 {
		outcomes = runFieldsConcurrently(ctx, s, schema, data)
	} else {
		outcomes = make([]fieldOutcome, 0, len(schema.order))
		for _, f := range schema.order {
			outcomes = append(outcomes, runChain(ctx, s.registry, f.name, f.clean(data[f.name]), f.refs, s.meta))
		}
	}

	res := &Result{Success: true}
	for _, out := range outcomes {
		if out.failed {
			res.Success = false
			res.Errors = append(res.Errors, s.fieldError(out))
		}
	}
	res.FailureCount = len(res.Errors)

	if res.Success {
		echo := make(map[string]any, len(data))
		for k, v := range data {
			echo[k] = v
		}
		for _, out := range outcomes {
			echo[out.field] = out.value
		}
		res.Data = echo
	}

	res.Duration = time.Since(start)
	return res, nil
}

// runFieldsConcurrently launches one future per field and awaits them in
// declaration order. Awaiting in order is what keeps the merged Errors slice
// deterministic no matter which field finishes first.
func runFieldsConcurrently(ctx context.Context, s *settings, schema *Schema, data map[string]any) []fieldOutcome {
	futures := make([]*async.Future[fieldOutcome], len(schema.order))
	for i, f := range schema.order {
		futures[i] = async.Run(ctx, f, func(ctx context.Context, f *schemaField) (fieldOutcome, error) {
			return runChain(ctx, s.registry, f.name, f.clean(data[f.name]), f.refs, s.meta), nil
		})
	}

	outcomes := make([]fieldOutcome, len(futures))
	for i, fut := range futures {
		out, err := fut.Await()
		if err != nil {
			// Only a pre-canceled context produces an error here; report it
			// as a canceled outcome for the field, same as the sequential path.
			f := schema.order[i]
			out = fieldOutcome{
				field:  f.name,
				failed: true,
				rule:   "",
				err: Fail("validation.canceled", "validation canceled", map[string]any{
					"field": f.name,
				}),
			}
		}
		outcomes[i] = out
	}
	return outcomes
}
