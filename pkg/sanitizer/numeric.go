package sanitizer

// ClampInt pins an int value into [min, max].
func ClampInt(min, max int) func(any) any {
	return Lift(func(n int) int {
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	})
}

// ClampFloat pins a float64 value into [min, max].
func ClampFloat(min, max float64) func(any) any {
	return Lift(func(n float64) float64 {
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	})
}

// NonNegative replaces negative ints with zero.
func NonNegative() func(any) any {
	return Lift(func(n int) int {
		if n < 0 {
			return 0
		}
		return n
	})
}
