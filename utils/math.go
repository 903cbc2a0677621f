package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 4 || pp < -4 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}

// Linspace returns N evenly spaced values over [xmin, xmax], endpoints included
func Linspace(xmin, xmax float64, N int) (v []float64) {
	v = make([]float64, N)
	switch N {
	case 0:
	case 1:
		v[0] = xmin
	default:
		floats.Span(v, xmin, xmax)
	}
	return
}
