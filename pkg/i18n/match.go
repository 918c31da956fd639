package i18n

import (
	"golang.org/x/text/language"
)

// Match negotiates the best language for an Accept-Language header against
// the supported codes, falling back when nothing matches or the header is
// garbage. Matching is semantic, so "en-US;q=0.9, uk;q=0.8" resolves to "en"
// when only base languages are supported.
func Match(acceptLanguage string, supported []string, fallback string) string {
	if acceptLanguage == "" || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return fallback
	}

	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return fallback
	}

	_, index, conf := language.NewMatcher(tags).Match(wanted...)
	if conf == language.No {
		return fallback
	}
	return codes[index]
}
