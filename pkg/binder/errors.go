package binder

import "errors"

var (
	ErrUnsupportedContentType = errors.New("binder: unsupported content type")
	ErrMalformedBody          = errors.New("binder: malformed request body")
	ErrBodyTooLarge           = errors.New("binder: request body too large")
	ErrNilSchema              = errors.New("binder: schema is nil")
)
