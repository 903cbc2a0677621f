package utils

// Wrap maps any integer index onto [0, n), so Wrap(-1, n) == n-1 and Wrap(n, n) == 0
func Wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Roll returns a copy of v shifted by shift positions: R[i] = v[i-shift], periodically
func Roll(v []float64, shift int) (R []float64) {
	var (
		n = len(v)
	)
	R = make([]float64, n)
	for i := range v {
		R[Wrap(i+shift, n)] = v[i]
	}
	return
}
