package formkit

import (
	"maps"
	"sort"
	"sync"
)

// builtins is the canonical rule set installed into every new registry. Names
// are the wire contract: schema files and remote clients address rules by
// these exact strings.
var builtins = map[string]RuleFunc{
	"IsRequired": isRequired,
	"Nullable":   nullable,

	"Array":          isArray,
	"ArrayMinLength": arrayMinLength,
	"ArrayMaxLength": arrayMaxLength,
	"ArrayLength":    arrayLength,
	"ArrayContains":  arrayContains,
	"ArrayUnique":    arrayUnique,

	"MinLength": minLength,
	"MaxLength": maxLength,
	"Length":    exactLength,
	"Matches":   matches,

	"Email": email,
	"URL":   validURL,
	"UUID":  validUUID,

	"Min":      minNumber,
	"Max":      maxNumber,
	"Between":  betweenNumber,
	"IsNumber": isNumber,

	"OneOf":    oneOf,
	"NotOneOf": notOneOf,
	"Equals":   equals,
}

// Registry maps rule names to implementations. The zero value is not usable;
// NewRegistry returns a registry pre-populated with the built-in rules.
//
// Registration normally happens once at startup, but the registry stays safe
// for concurrent use throughout. Registering an existing name replaces it
// silently: applications are meant to be able to swap built-ins for their own
// implementations without ceremony.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleFunc
}

// NewRegistry returns a registry seeded with the built-in rules.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]RuleFunc, len(builtins))}
	maps.Copy(r.rules, builtins)
	return r
}

// Register adds or replaces a rule. Last write wins. Empty names and nil
// funcs are ignored.
func (r *Registry) Register(name string, fn RuleFunc) {
	if name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	r.rules[name] = fn
	r.mu.Unlock()
}

// Rule looks up a rule by name. The second result is false for unknown names;
// lookups never panic.
func (r *Registry) Rule(name string) (RuleFunc, bool) {
	r.mu.RLock()
	fn, ok := r.rules[name]
	r.mu.RUnlock()
	return fn, ok
}

// Has reports whether a rule is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Rule(name)
	return ok
}

// Rules returns a snapshot of the current name to rule mapping. Mutating the
// returned map does not affect the registry.
func (r *Registry) Rules() map[string]RuleFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]RuleFunc, len(r.rules))
	maps.Copy(out, r.rules)
	return out
}

// Names returns the registered rule names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Register adds or replaces a rule in the package default registry used by
// Validate and ValidateSchema unless WithRegistry overrides it.
func Register(name string, fn RuleFunc) {
	defaultRegistry.Register(name, fn)
}

// Rules snapshots the package default registry.
func Rules() map[string]RuleFunc {
	return defaultRegistry.Rules()
}

// DefaultRegistry exposes the package default registry so applications can
// pass it around explicitly. Tests needing isolation should build their own
// with NewRegistry instead of mutating this one.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
