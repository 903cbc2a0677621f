package utils

import "math"

// Sign returns -1, 0 or 1. Unlike math.Copysign, zero has no sign.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// SafeDivide computes a/b, regularized where b vanishes:
//   - |a| <= eps and |b| <= eps: 1, a flat region
//   - |b| <= eps < |a|: Sign(b)*a/eps, bounded and carrying the sign of b
//   - otherwise: a/b
func SafeDivide(a, b, epsilon float64) float64 {
	var (
		absA, absB = math.Abs(a), math.Abs(b)
	)
	switch {
	case absB > epsilon:
		return a / b
	case absA <= epsilon:
		return 1
	default:
		return Sign(b) * a / epsilon
	}
}

func SafeDivideTo(dst, a, b []float64, epsilon float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(a))
	}
	for i := range a {
		dst[i] = SafeDivide(a[i], b[i], epsilon)
	}
	return dst
}
