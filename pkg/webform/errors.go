package webform

import "errors"

var (
	ErrNilHandler = errors.New("webform: nil handler")
	ErrNilSchema  = errors.New("webform: nil schema")
)
