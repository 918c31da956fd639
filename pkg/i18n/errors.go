package i18n

import "errors"

var (
	ErrNilAdapter       = errors.New("i18n: adapter is nil")
	ErrNilParser        = errors.New("i18n: parser is nil")
	ErrEmptyPath        = errors.New("i18n: path is empty")
	ErrFailedToRead     = errors.New("i18n: failed to read translation source")
	ErrFailedToParse    = errors.New("i18n: failed to parse translations")
	ErrInvalidStructure = errors.New("i18n: invalid translation structure")
	ErrNoTranslations   = errors.New("i18n: no translations found")
)
