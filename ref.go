package formkit

// inlineRuleName is the name inline rules report in failure entries, since an
// anonymous func has no registry name to blame.
const inlineRuleName = "inline"

// Ref is a declarative reference to a validation rule: a registered rule
// addressed by name with optional bound parameters, or an ad hoc RuleFunc.
// Refs are cheap values meant to be built once and attached to schemas.
type Ref struct {
	name   string
	params []any
	fn     RuleFunc
}

// Named references a registered rule, binding params in order. The name is
// not checked here: resolution happens at validation time against whichever
// registry the call uses, and an unknown name fails validation instead of
// panicking.
func Named(name string, params ...any) Ref {
	return Ref{name: name, params: params}
}

// Inline wraps an ad hoc RuleFunc that never touches a registry. A nil fn
// yields a Ref that fails resolution the same way an unknown name does.
func Inline(fn RuleFunc) Ref {
	if fn == nil {
		return Ref{name: inlineRuleName}
	}
	return Ref{name: inlineRuleName, fn: fn}
}

// Name reports the referenced rule's name, or "inline" for ad hoc rules.
func (r Ref) Name() string {
	return r.name
}

// Params returns a copy of the bound parameters.
func (r Ref) Params() []any {
	if len(r.params) == 0 {
		return nil
	}
	out := make([]any, len(r.params))
	copy(out, r.params)
	return out
}

// IsInline reports whether the Ref carries its own RuleFunc.
func (r Ref) IsInline() bool {
	return r.fn != nil
}

// resolved is a Ref normalized against a registry: the callable plus the
// parameters bound to it, ready for execution.
type resolved struct {
	name   string
	params []any
	fn     RuleFunc
}

// resolve normalizes a Ref into a callable. The second result is false when a
// named rule is missing from the registry (or an inline fn is nil); the
// executor turns that into a failing outcome so misconfigured references
// reach the caller through the result like any other failure.
func resolve(reg *Registry, ref Ref) (resolved, bool) {
	if ref.fn != nil {
		return resolved{name: ref.name, params: ref.params, fn: ref.fn}, true
	}
	fn, ok := reg.Rule(ref.name)
	if !ok {
		return resolved{name: ref.name}, false
	}
	return resolved{name: ref.name, params: ref.params, fn: fn}, true
}
