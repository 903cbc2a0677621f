package Advection1D

import (
	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/utils"
	"gonum.org/v1/gonum/floats"
)

// LaxWendroff is second order: a centered first difference plus the c^2/2 second difference
// that cancels the leading error of the forward Euler step.
type LaxWendroff struct{}

func (LaxWendroff) String() string { return SCHEME_LaxWendroff.Print() }

func (LaxWendroff) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	var (
		c = g.C
		// Unit stencils of the centered first and second differences
		D1 = utils.NewCirculant(g.Xs, utils.Band{Offset: -1, Value: 1}, utils.Band{Offset: 1, Value: -1})
		D2 = utils.NewCirculant(g.Xs,
			utils.Band{Offset: -1, Value: 1},
			utils.Band{Offset: 0, Value: -2},
			utils.Band{Offset: 1, Value: 1})
	)
	ops = newExplicitOperators(D1.Scale(c/2), D2.Scale(utils.POW(c, 2)/2))
	return
}

func (LaxWendroff) Advance(n int, ops Operators, U *Field) (err error) {
	var (
		u0 = U.Col(n)
		u1 = U.Slot(n + 1)
	)
	ops.Mats[0].MulVec(u1, u0)
	ops.Mats[1].MulVecAdd(u1, u0)
	floats.Add(u1, u0)
	return
}
