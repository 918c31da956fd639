package sanitizer

// Lift adapts a typed transform into the loosely typed shape schemas consume.
// Values of any other dynamic type pass through untouched.
func Lift[T any](fn func(T) T) func(any) any {
	return func(v any) any {
		if tv, ok := v.(T); ok {
			return fn(tv)
		}
		return v
	}
}

// Pipeline composes transforms left to right into a single transform. Nil
// entries are skipped.
func Pipeline(transforms ...func(any) any) func(any) any {
	return func(v any) any {
		for _, t := range transforms {
			if t != nil {
				v = t(v)
			}
		}
		return v
	}
}
