package schemafile

import "errors"

var (
	ErrFailedToRead     = errors.New("schemafile: failed to read document")
	ErrFailedToParse    = errors.New("schemafile: failed to parse document")
	ErrInvalidStructure = errors.New("schemafile: invalid document structure")
	ErrNoSchemas        = errors.New("schemafile: document declares no schemas")
	ErrUnsupportedExt   = errors.New("schemafile: unsupported file extension")
)
