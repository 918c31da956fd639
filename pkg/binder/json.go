package binder

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formkit"
)

// JSON extracts declared fields from a JSON object body. Arrays and nested
// objects come through as []any and map[string]any, which is exactly what
// the array rules operate on.
func JSON(r *http.Request, schema *formkit.Schema) (map[string]any, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	defer body.Close()

	var payload map[string]any
	dec := json.NewDecoder(body)
	if err := dec.Decode(&payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}
		return nil, errors.Join(ErrMalformedBody, err)
	}
	// Trailing garbage after the object means a broken client; reject it
	// rather than validating half a payload.
	if dec.More() {
		return nil, ErrMalformedBody
	}

	data := make(map[string]any, len(schema.Fields()))
	for _, field := range schema.Fields() {
		if v, ok := payload[field]; ok {
			data[field] = v
		}
	}
	return data, nil
}
