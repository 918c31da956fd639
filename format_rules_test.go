package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"
)

func TestEmailRule(t *testing.T) {
	t.Parallel()

	t.Run("accepts common addresses", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"user@example.com", "first.last@sub.example.co", "u+tag@example.io"} {
			assert.True(t, check(t, v, "Email").Success, "address %s should pass", v)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"", "plain", "@example.com", "user@", "user@host", "user@.com", "user@example.", "Jo <jo@example.com>"} {
			assert.False(t, check(t, v, "Email").Success, "address %q should fail", v)
		}
	})

	t.Run("rejects non-string values", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, 42, "Email").Success)
	})
}

func TestURLRule(t *testing.T) {
	t.Parallel()

	t.Run("accepts absolute http urls", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "https://example.com/path?q=1", "URL").Success)
		assert.True(t, check(t, "http://localhost:8080", "URL").Success)
	})

	t.Run("rejects relative and non-http urls", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"", "/path/only", "example.com", "ftp://example.com", "://bad"} {
			assert.False(t, check(t, v, "URL").Success, "url %q should fail", v)
		}
	})
}

func TestUUIDRule(t *testing.T) {
	t.Parallel()

	t.Run("accepts generated uuids", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, uuid.NewString(), "UUID").Success)
	})

	t.Run("rejects malformed uuids", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"", "not-a-uuid", "123e4567e89b12d3a456426614174000", "123e4567-e89b-12d3-a456-42661417400Z"} {
			assert.False(t, check(t, v, "UUID").Success, "uuid %q should fail", v)
		}
	})
}
