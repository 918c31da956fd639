package binder

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formkit"
)

// Form extracts declared fields from a form-encoded or multipart body.
// Repeated inputs (checkbox groups, multi-selects) become []any; single
// inputs stay strings.
func Form(r *http.Request, schema *formkit.Schema) (map[string]any, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	err := r.ParseForm()
	if err == nil && mediaType(r) == "multipart/form-data" {
		err = r.ParseMultipartForm(MaxBodyBytes)
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, errors.Join(ErrMalformedBody, err)
	}

	data := make(map[string]any, len(schema.Fields()))
	for _, field := range schema.Fields() {
		vs, ok := r.PostForm[field]
		if !ok {
			continue
		}
		data[field] = fromValues(vs)
	}
	return data, nil
}
