package Advection1D

import (
	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/limiters"
	"github.com/notargets/advect1d/utils"
	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon regularizes the slope ratio where neighboring differences vanish
const DefaultEpsilon = 1.e-12

// FluxLimiter is the UpwindForward step minus a limited anti-diffusive correction. The limiter
// picks how much of the Lax-Wendroff flux is blended in per cell from the local slope ratio theta:
// phi = 0 recovers upwind, phi = 1 recovers Lax-Wendroff.
type FluxLimiter struct {
	Limiter limiters.Func
	Params  limiters.Params
	Epsilon float64
	upwind  UpwindForward
	c       float64
	// Per step scratch
	delta, theta, corr, correction []float64
}

func NewFluxLimiter(limiter limiters.Func, params limiters.Params, epsilon float64) *FluxLimiter {
	if limiter == nil {
		panic("flux limiter scheme needs a limiter function")
	}
	return &FluxLimiter{
		Limiter: limiter,
		Params:  params,
		Epsilon: epsilon,
	}
}

func (s *FluxLimiter) String() string { return SCHEME_FluxLimiter.Print() }

func (s *FluxLimiter) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	s.c = g.C
	s.delta = make([]float64, g.Xs)
	s.theta = make([]float64, g.Xs)
	s.corr = make([]float64, g.Xs)
	s.correction = make([]float64, g.Xs)
	return s.upwind.BuildOperators(g)
}

func (s *FluxLimiter) Advance(n int, ops Operators, U *Field) (err error) {
	correction := s.Correction(U.Col(n))
	if err = s.upwind.Advance(n, ops, U); err != nil {
		return
	}
	floats.Sub(U.Slot(n+1), correction)
	return
}

// Correction returns the anti-diffusive term for the level u, in scratch storage that is
// overwritten on the next call. BuildOperators must have been called first.
func (s *FluxLimiter) Correction(u []float64) []float64 {
	var (
		Xs  = len(u)
		c   = s.c
		phi []float64
	)
	// delta[i] = u[i] - u[i-1]
	for i := 0; i < Xs; i++ {
		s.delta[i] = u[i] - u[utils.Wrap(i-1, Xs)]
	}
	// theta[i] = delta[i-1] / delta[i]
	utils.SafeDivideTo(s.theta, utils.Roll(s.delta, 1), s.delta, s.Epsilon)
	phi = s.Limiter(s.theta, s.Params)
	floats.MulTo(s.corr, phi, s.delta)
	for i := 0; i < Xs; i++ {
		s.correction[i] = 0.5 * c * (1 - c) * (s.corr[utils.Wrap(i+1, Xs)] - s.corr[i])
	}
	return s.correction
}
