package formkit

import "time"

// FieldError describes one failed rule for one field. Message is already
// localized when the call supplied a translator; the translation metadata is
// kept alongside so callers can re-render in another language.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`

	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// Result is the aggregate outcome of one validation call.
//
// On success Data holds a shallow copy of the input with each validated
// field replaced by its sanitized working copy, ready to persist. On failure
// Data is nil: partially sanitized values are withheld so callers cannot
// accidentally store data that did not pass.
type Result struct {
	Success      bool           `json:"success"`
	Data         map[string]any `json:"data,omitempty"`
	Errors       []FieldError   `json:"errors,omitempty"`
	FailureCount int            `json:"failure_count"`
	Duration     time.Duration  `json:"duration"`
}

// HasError reports whether the named field failed.
func (r *Result) HasError(field string) bool {
	for _, e := range r.Errors {
		if e.Field == field {
			return true
		}
	}
	return false
}

// ErrorFor returns the failure message for the named field, or "" when the
// field passed. At most one entry exists per field because chains fail fast.
func (r *Result) ErrorFor(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// FailedFields returns the names of failed fields in reporting order.
func (r *Result) FailedFields() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	fields := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		fields[i] = e.Field
	}
	return fields
}
