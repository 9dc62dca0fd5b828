package core

import "math"

// Infinity returns the value used as "+∞" (unreachable) for the weight type W:
// +Inf for floating-point types, the maximum representable value for integers.
//
// Algorithms never add to an infinite operand, so the integer sentinel does not
// overflow inside the engines.
func Infinity[W Weight]() W {
	var w W
	switch any(w).(type) {
	case float64:
		return any(math.Inf(1)).(W)
	case float32:
		return any(float32(math.Inf(1))).(W)
	case int:
		return any(int(math.MaxInt)).(W)
	case int64:
		return any(int64(math.MaxInt64)).(W)
	case int32:
		return any(int32(math.MaxInt32)).(W)
	case uint:
		return any(uint(math.MaxUint)).(W)
	case uint64:
		return any(uint64(math.MaxUint64)).(W)
	}

	return maxOf[W]()
}

// maxOf derives the largest value of W from its arithmetic alone, covering
// named types and the narrow kinds the switch in Infinity leaves out.
func maxOf[W Weight]() W {
	var zero W
	one := W(1)
	if one/(one+one) != zero {
		return W(math.Inf(1))
	}
	if m := zero - one; m > zero {
		return m // unsigned: 0-1 wraps to the maximum
	}
	// signed: grow 0, 1, 3, 7, ... until the next doubling wraps negative
	m := zero
	for next := m + m + one; next > m; next = m + m + one {
		m = next
	}

	return m
}

// IsInf reports whether w equals Infinity[W]().
func IsInf[W Weight](w W) bool {
	return w == Infinity[W]()
}
