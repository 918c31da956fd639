// Package binder extracts the data map a validation schema consumes from an
// incoming HTTP request.
//
// Extraction is schema-driven: only fields the schema declares are pulled
// from the request, and fields the request does not carry stay absent from
// the map, so IsRequired can tell a missing field from an empty one.
// Undeclared payload keys are dropped rather than rejected; validation
// schemas describe what they need, not everything a client might send.
//
//	data, err := binder.Bind(r, schema)
//	if err != nil {
//		// malformed or oversized payload; nothing was validated
//	}
//	res, _ := formkit.ValidateSchema(r.Context(), schema, data)
//
// Bind dispatches on Content-Type (JSON and form-encoded bodies, query
// string for body-less methods); JSON, Form and Query are the explicit
// variants. Bodies are capped at 1MB.
package binder
