// Package formkit is a declarative, registry-driven validation engine for
// form-shaped data.
//
// Rules are small functions identified by stable string names and held in a
// Registry. A Schema binds ordered rule chains (and optional sanitizing
// transforms) to named fields; ValidateSchema runs every field's chain against
// a data map and aggregates the outcome into a single Result. Validate does
// the same for one ad hoc value.
//
// # Architecture
//
// Each source file groups one concern: ref.go the rule reference forms,
// registry.go the name-to-rule mapping, schema.go the per-field metadata,
// executor.go the fail-fast chain runner, validate.go the entry points and
// per-call options, and the `*_rules.go` files the built-in rule families
// (presence, array, string, format, numeric, choice).
//
// Core building blocks:
//   - RuleFunc – one constraint check; nil return passes, an error fails
//   - Ref      – a rule reference: Named with bound params, or Inline
//   - Registry – name-to-RuleFunc mapping, extensible via Register
//   - Schema   – ordered field declarations with rule chains and sanitizers
//   - Result   – aggregate success flag, sanitized data echo, field errors
//
// # Execution contract
//
// Within a field, rules run strictly in declaration order and the chain stops
// at the first failure, so an expensive rule placed after a cheap one never
// runs when the cheap one rejects the value. Every rule, synchronous or
// I/O-bound, goes through the same context-aware path. Fields are independent
// and evaluate sequentially by default; WithConcurrentFields runs them in
// parallel with results merged back in declaration order.
//
// # Usage
//
//	schema := formkit.NewSchema("signup").
//		Field("email", formkit.Named("IsRequired"), formkit.Named("Email")).
//		Field("tags", formkit.Named("ArrayMinLength", 2), formkit.Named("ArrayUnique")).
//		Sanitize("email", sanitizer.Lift(strings.TrimSpace))
//
//	res, err := formkit.ValidateSchema(ctx, schema, data)
//	if err != nil {
//		// nil schema or nil data: a caller bug, not a validation failure
//	}
//	if !res.Success {
//		// res.Errors holds one entry per failed field, in declaration order
//	}
//
// # Error Handling
//
// Expected validation failures, unknown rule names, and malformed rule
// parameters are all reported as entries in Result.Errors. Only structural
// misuse of the API (nil schema, nil data map) returns an error.
package formkit
