package binder

import (
	"mime"
	"net/http"

	"github.com/dmitrymomot/formkit"
)

// MaxBodyBytes caps how much of a request body is read. Validation payloads
// are small; anything bigger is either abuse or a wrong endpoint.
const MaxBodyBytes int64 = 1 << 20

// Bind extracts a schema's fields from the request, choosing the source by
// method and Content-Type: query string for GET/HEAD/DELETE, JSON or
// form-encoded body otherwise.
func Bind(r *http.Request, schema *formkit.Schema) (map[string]any, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return Query(r, schema)
	}

	switch mediaType(r) {
	case "application/json":
		return JSON(r, schema)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return Form(r, schema)
	default:
		return nil, ErrUnsupportedContentType
	}
}

// Query extracts declared fields from the URL query string. Repeated
// parameters become []any; single values stay strings.
func Query(r *http.Request, schema *formkit.Schema) (map[string]any, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	values := r.URL.Query()
	data := make(map[string]any, len(schema.Fields()))
	for _, field := range schema.Fields() {
		vs, ok := values[field]
		if !ok {
			continue
		}
		data[field] = fromValues(vs)
	}
	return data, nil
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}

// fromValues maps url.Values entries into the shapes rules expect: repeated
// parameters become an []any so array rules apply.
func fromValues(vs []string) any {
	if len(vs) == 1 {
		return vs[0]
	}
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
