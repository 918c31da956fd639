package formkit

import "errors"

// Programming mistakes surface as returned errors so callers can catch them in
// tests. Expected validation failures never appear here; they are reported as
// failing entries in Result.Errors.
var (
	ErrNilSchema = errors.New("validation schema is nil")
	ErrNilData   = errors.New("validation data is nil")
)
