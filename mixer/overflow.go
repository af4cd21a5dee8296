package mixer

import "math"

// mulInt64 returns a*b and whether the product fits in an int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// MinInt64 / -1 wraps silently, so the division check below misses it
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b

	return p, p/a == b
}

// addInt64 returns a+b and whether the sum fits in an int64.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}
