package formkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
)

// check runs a single named rule against a value on the default registry.
func check(t *testing.T, value any, name string, params ...any) *formkit.Result {
	t.Helper()
	return formkit.Validate(context.Background(), value, []formkit.Ref{formkit.Named(name, params...)})
}

func TestArrayRule(t *testing.T) {
	t.Parallel()

	t.Run("passes for slices", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []string{"a"}, "Array").Success)
		assert.True(t, check(t, []any{1, "x"}, "Array").Success)
	})

	t.Run("passes for empty slices", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []int{}, "Array").Success)
	})

	t.Run("passes for arrays", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, [2]int{1, 2}, "Array").Success)
	})

	t.Run("fails for non-arrays", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{"x", 1, 1.5, true, map[string]any{}, nil} {
			assert.False(t, check(t, v, "Array").Success, "value %v should fail", v)
		}
	})
}

func TestArrayLengthRules(t *testing.T) {
	t.Parallel()

	t.Run("min length boundary", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, []int{1, 2}, "ArrayMinLength", 3).Success)
		assert.True(t, check(t, []int{1, 2, 3}, "ArrayMinLength", 3).Success)
		assert.True(t, check(t, []int{1, 2, 3, 4}, "ArrayMinLength", 3).Success)
	})

	t.Run("max length boundary", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []int{1, 2}, "ArrayMaxLength", 2).Success)
		assert.False(t, check(t, []int{1, 2, 3}, "ArrayMaxLength", 2).Success)
	})

	t.Run("exact length", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []int{1, 2}, "ArrayLength", 2).Success)
		assert.False(t, check(t, []int{1}, "ArrayLength", 2).Success)
		assert.False(t, check(t, []int{1, 2, 3}, "ArrayLength", 2).Success)
	})

	t.Run("float param from a JSON document coerces", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []int{1, 2, 3}, "ArrayMinLength", float64(3)).Success)
	})

	t.Run("negative or missing param is a malformed-parameter failure", func(t *testing.T) {
		t.Parallel()

		res := check(t, []int{1}, "ArrayMinLength", -1)
		require.False(t, res.Success)
		assert.Contains(t, res.Errors[0].Message, "invalid parameters")

		res = check(t, []int{1}, "ArrayMaxLength")
		require.False(t, res.Success)
		assert.Contains(t, res.Errors[0].Message, "invalid parameters")
	})

	t.Run("non-array value fails length rules", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, "abc", "ArrayMinLength", 1).Success)
	})
}

func TestArrayContains(t *testing.T) {
	t.Parallel()

	t.Run("passes when every required item is present", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []any{"a", "b", "c"}, "ArrayContains", "a", "c").Success)
	})

	t.Run("fails when any required item is missing", func(t *testing.T) {
		t.Parallel()

		res := check(t, []any{"a", "b"}, "ArrayContains", "a", "z")
		require.False(t, res.Success)
		assert.Contains(t, res.Errors[0].Message, "z")
	})

	t.Run("empty required set always fails", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, []any{"a"}, "ArrayContains").Success)
	})

	t.Run("object members match structurally", func(t *testing.T) {
		t.Parallel()

		value := []any{map[string]any{"id": 1}, map[string]any{"id": 2}}
		assert.True(t, check(t, value, "ArrayContains", map[string]any{"id": 2}).Success)
		assert.False(t, check(t, value, "ArrayContains", map[string]any{"id": 3}).Success)
	})

	t.Run("numeric members match across int and float", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []any{float64(1), float64(2)}, "ArrayContains", 2).Success)
	})
}

func TestArrayUnique(t *testing.T) {
	t.Parallel()

	t.Run("passes for distinct elements", func(t *testing.T) {
		t.Parallel()
		assert.True(t, check(t, []int{1, 2, 3}, "ArrayUnique").Success)
		assert.True(t, check(t, []int{}, "ArrayUnique").Success)
	})

	t.Run("fails on duplicates", func(t *testing.T) {
		t.Parallel()
		assert.False(t, check(t, []int{1, 1, 2}, "ArrayUnique").Success)
	})

	t.Run("structural duplicates are caught", func(t *testing.T) {
		t.Parallel()

		value := []any{map[string]any{"id": 1}, map[string]any{"id": 1}}
		assert.False(t, check(t, value, "ArrayUnique").Success)
	})

	t.Run("reports the first duplicate found in scan order", func(t *testing.T) {
		t.Parallel()

		res := check(t, []string{"b", "a", "b", "a"}, "ArrayUnique")
		require.False(t, res.Success)
		assert.Contains(t, res.Errors[0].Message, "b")
	})
}
