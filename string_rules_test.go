package formkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLengthRules(t *testing.T) {
	t.Parallel()

	t.Run("min length", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "abc", "MinLength", 3).Success)
		assert.False(t, check(t, "ab", "MinLength", 3).Success)
	})

	t.Run("max length", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "ab", "MaxLength", 2).Success)
		assert.False(t, check(t, "abc", "MaxLength", 2).Success)
	})

	t.Run("exact length", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "ab", "Length", 2).Success)
		assert.False(t, check(t, "a", "Length", 2).Success)
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "héllo", "Length", 5).Success)
	})

	t.Run("length rules also apply to slices and maps", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []int{1, 2, 3}, "MinLength", 2).Success)
		assert.True(t, check(t, map[string]int{"a": 1}, "MaxLength", 1).Success)
	})

	t.Run("value without a length fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, 42, "MinLength", 1).Success)
		assert.False(t, check(t, nil, "MinLength", 1).Success)
	})

	t.Run("negative bound is a malformed-parameter failure", func(t *testing.T) {
		t.Parallel()

		res := check(t, "abc", "MinLength", -2)
		require.False(t, res.Success)
		assert.Contains(t, res.Errors[0].Message, "invalid parameters")
	})
}

func TestMatchesRule(t *testing.T) {
	t.Parallel()

	t.Run("matching string passes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "abc123", "Matches", `^[a-z]+\d+$`).Success)
	})

	t.Run("non-matching string fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, "123abc", "Matches", `^[a-z]+\d+$`).Success)
	})

	t.Run("non-string value fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, 5, "Matches", `\d`).Success)
	})

	t.Run("invalid pattern is a malformed-parameter failure", func(t *testing.T) {
		t.Parallel()

		res := check(t, "x", "Matches", "([")
		require.False(t, res.Success)
		assert.Contains(t, res.Errors[0].Message, "invalid parameters")
	})

	t.Run("missing pattern is a malformed-parameter failure", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, "x", "Matches").Success)
	})
}

func TestPresenceRules(t *testing.T) {
	t.Parallel()

	t.Run("required rejects nil and empty string", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, nil, "IsRequired").Success)
		assert.False(t, check(t, "", "IsRequired").Success)
	})

	t.Run("required rejects typed nils", func(t *testing.T) {
		t.Parallel()

		var p *int
		assert.False(t, check(t, p, "IsRequired").Success)
		var s []int
		assert.False(t, check(t, s, "IsRequired").Success)
	})

	t.Run("required accepts present values", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, "x", "IsRequired").Success)
		assert.True(t, check(t, 0, "IsRequired").Success)
		assert.True(t, check(t, false, "IsRequired").Success)
		assert.True(t, check(t, []int{}, "IsRequired").Success)
	})
}
