package formkit

// Transform rewrites a field value before its rules run. Transforms make the
// working copy rules see and Result.Data echoes; the caller's original data
// is never touched. The sanitizer package provides ready-made transforms.
type Transform func(any) any

type schemaField struct {
	name       string
	refs       []Ref
	transforms []Transform
}

// clean applies the field's transforms in attachment order.
func (f *schemaField) clean(v any) any {
	for _, t := range f.transforms {
		if t != nil {
			v = t(v)
		}
	}
	return v
}

// Schema records the ordered rule chains attached to the named fields of one
// payload shape. Attachment order is evaluation order, for fields and for the
// rules within each field, so behavior is reproducible run to run.
//
// A Schema is built once and read many times; it is safe for concurrent use
// after construction but not during it.
type Schema struct {
	name   string
	order  []*schemaField
	fields map[string]*schemaField
}

// NewSchema returns an empty schema. The name labels log entries and remote
// validation endpoints; it carries no semantics of its own.
func NewSchema(name string) *Schema {
	return &Schema{
		name:   name,
		fields: make(map[string]*schemaField),
	}
}

func (s *Schema) field(name string) *schemaField {
	if f, ok := s.fields[name]; ok {
		return f
	}
	f := &schemaField{name: name}
	s.fields[name] = f
	s.order = append(s.order, f)
	return f
}

// Field appends rules to the named field's chain, declaring the field on
// first use. Repeated calls stack: rules accumulate in attachment order and
// duplicates are kept as declared, never deduplicated or reordered.
func (s *Schema) Field(name string, refs ...Ref) *Schema {
	if name == "" {
		return s
	}
	f := s.field(name)
	f.refs = append(f.refs, refs...)
	return s
}

// Sanitize appends transforms applied to the field's value before any of its
// rules run, declaring the field on first use. Like rules, transforms stack
// in attachment order.
func (s *Schema) Sanitize(name string, transforms ...Transform) *Schema {
	if name == "" {
		return s
	}
	f := s.field(name)
	f.transforms = append(f.transforms, transforms...)
	return s
}

// Name returns the schema's label.
func (s *Schema) Name() string {
	return s.name
}

// Len reports how many fields the schema declares.
func (s *Schema) Len() int {
	return len(s.order)
}

// Fields returns the field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.order))
	for i, f := range s.order {
		names[i] = f.name
	}
	return names
}

// Has reports whether the schema declares the named field.
func (s *Schema) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// FieldRules returns a copy of the named field's rule chain in evaluation
// order, or nil for undeclared fields.
func (s *Schema) FieldRules(name string) []Ref {
	f, ok := s.fields[name]
	if !ok || len(f.refs) == 0 {
		return nil
	}
	out := make([]Ref, len(f.refs))
	copy(out, f.refs)
	return out
}

// Rules returns the full field to rule-chain mapping as a defensive copy,
// mirroring the chains exactly as declared.
func (s *Schema) Rules() map[string][]Ref {
	out := make(map[string][]Ref, len(s.order))
	for _, f := range s.order {
		refs := make([]Ref, len(f.refs))
		copy(refs, f.refs)
		out[f.name] = refs
	}
	return out
}
