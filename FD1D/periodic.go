package FD1D

import "math"

type Function func(x float64) float64

// Periodic extends f, given on [x0, x1), to the whole real line with period x1-x0
func Periodic(x0, x1 float64, f Function) Function {
	var (
		L = x1 - x0
	)
	return func(x float64) float64 {
		xm := math.Mod(x-x0, L)
		if xm < 0 {
			xm += L
		}
		// -tiny + L rounds up to L
		if xm >= L {
			xm = 0
		}
		return f(xm + x0)
	}
}
