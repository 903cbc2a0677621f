// Package limiters holds flux limiter functions φ(θ) of the slope ratio θ. A limiter returns a
// new slice the same length as θ and never modifies θ.
package limiters

import (
	"math"

	"github.com/notargets/advect1d/utils"
)

// Params carries named tuning values, e.g. "beta" for Sweby
type Params map[string]float64

// Get returns the named value or def when it is absent
func (p Params) Get(name string, def float64) float64 {
	if val, ok := p[name]; ok {
		return val
	}
	return def
}

type Func func(theta []float64, p Params) (phi []float64)

const DefaultSwebyBeta = 1.5

func apply(theta []float64, f func(th float64) float64) (phi []float64) {
	phi = make([]float64, len(theta))
	for i, th := range theta {
		phi[i] = f(th)
	}
	return
}

// Upwind reduces the flux limiter scheme to first order upwind
func Upwind(theta []float64, _ Params) []float64 {
	return make([]float64, len(theta))
}

// LaxWendroff reduces the flux limiter scheme to Lax-Wendroff
func LaxWendroff(theta []float64, _ Params) []float64 {
	return utils.ConstArray(len(theta), 1)
}

func BeamWarming(theta []float64, _ Params) []float64 {
	return apply(theta, func(th float64) float64 { return th })
}

func Fromm(theta []float64, _ Params) []float64 {
	return apply(theta, func(th float64) float64 { return 0.5 * (1 + th) })
}

func Minmod(theta []float64, _ Params) []float64 {
	return apply(theta, func(th float64) float64 {
		return math.Max(0, math.Min(1, th))
	})
}

func Superbee(theta []float64, _ Params) []float64 {
	return apply(theta, func(th float64) float64 {
		return math.Max(0, math.Max(math.Min(1, 2*th), math.Min(2, th)))
	})
}

// Sweby interpolates between Minmod (beta = 1) and Superbee (beta = 2), beta defaults to 1.5
func Sweby(theta []float64, p Params) []float64 {
	beta := p.Get("beta", DefaultSwebyBeta)
	return apply(theta, func(th float64) float64 {
		return math.Max(0, math.Max(math.Min(1, beta*th), math.Min(beta, th)))
	})
}

// MC is the monotonized central limiter
func MC(theta []float64, _ Params) []float64 {
	return apply(theta, func(th float64) float64 {
		return math.Max(0, math.Min((1+th)/2, math.Min(2, 2*th)))
	})
}

func VanLeer(theta []float64, _ Params) []float64 {
	return apply(theta, func(th float64) float64 {
		return (th + math.Abs(th)) / (1 + math.Abs(th))
	})
}
