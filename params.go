package formkit

import (
	"fmt"
	"reflect"
)

// Rule parameters arrive from many sources with different numeric types: Go
// callers pass ints, JSON documents decode numbers as float64, YAML gives int
// or float depending on the literal. These helpers normalize them so rule
// implementations never care where a schema was declared.

// intParam coerces params[i] to an int. The second result is false when the
// parameter is missing or not a whole number.
func intParam(params []any, i int) (int, bool) {
	if i >= len(params) {
		return 0, false
	}
	switch v := params[i].(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		if float32(int(v)) == v {
			return int(v), true
		}
	case float64:
		if float64(int(v)) == v {
			return int(v), true
		}
	}
	return 0, false
}

// floatParam coerces params[i] to a float64. The second result is false when
// the parameter is missing or not numeric.
func floatParam(params []any, i int) (float64, bool) {
	if i >= len(params) {
		return 0, false
	}
	return toFloat(params[i])
}

// stringParam returns params[i] as a string. The second result is false when
// the parameter is missing or not a string.
func stringParam(params []any, i int) (string, bool) {
	if i >= len(params) {
		return "", false
	}
	s, ok := params[i].(string)
	return s, ok
}

// toFloat coerces any numeric value, including named types, to float64.
func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// equalValues compares two values the way schema authors expect: structural
// equality for composites, with cross-type numeric comparison so the int 3 a
// Go caller wrote matches the float64 3 a JSON document produced.
func equalValues(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

// badParams is the shared failure for rules invoked with missing or malformed
// parameters. Parameter problems are reported through the result like any
// other failure, not panicked, because schemas may come from config files.
func badParams(rule, field, reason string) *RuleError {
	return Fail("validation.invalid_params", fmt.Sprintf("invalid parameters for rule %s: %s", rule, reason), map[string]any{
		"field":  field,
		"rule":   rule,
		"reason": reason,
	})
}
