package formkit

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// email validates an address for typical web signup use: RFC 5322 parseable,
// no display name, and a dotted domain. Bare local domains like "user@host"
// are rejected because they are almost always typos in user-facing forms.
func email(_ context.Context, in Input) error {
	fail := Fail("validation.email", "must be a valid email address", map[string]any{
		"field": in.Field,
	})

	s, ok := in.Value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fail
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return fail
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return fail
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fail
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return fail
		}
	}

	return nil
}

// validURL requires an absolute http or https URL with a host.
func validURL(_ context.Context, in Input) error {
	fail := Fail("validation.url", "must be a valid URL", map[string]any{
		"field": in.Field,
	})

	s, ok := in.Value.(string)
	if !ok || s == "" {
		return fail
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return fail
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fail
	}

	return nil
}

// validUUID checks canonical 36-character UUID format. Length and hyphen
// positions are checked first so obviously wrong values skip the parse.
func validUUID(_ context.Context, in Input) error {
	fail := Fail("validation.uuid", "must be a valid UUID", map[string]any{
		"field": in.Field,
	})

	s, ok := in.Value.(string)
	if !ok || len(s) != 36 {
		return fail
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fail
	}
	if _, err := uuid.Parse(s); err != nil {
		return fail
	}

	return nil
}
