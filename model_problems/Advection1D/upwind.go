package Advection1D

import (
	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/utils"
)

// Upwind schemes difference against the left neighbor, so they are stable for 0 <= c <= 1

type UpwindForward struct{}

func (UpwindForward) String() string { return SCHEME_UpwindForward.Print() }

func (UpwindForward) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	ops = newExplicitOperators(
		utils.NewCirculant(g.Xs, utils.Band{Offset: 0, Value: 1 - c}, utils.Band{Offset: -1, Value: c}),
	)
	return
}

func (UpwindForward) Advance(n int, ops Operators, U *Field) (err error) {
	ops.Mats[0].MulVec(U.Slot(n+1), U.Col(n))
	return
}

type UpwindBackward struct{}

func (UpwindBackward) String() string { return SCHEME_UpwindBackward.Print() }

func (UpwindBackward) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	ops = newImplicitOperators(
		utils.NewCirculant(g.Xs, utils.Band{Offset: 0, Value: 1 + c}, utils.Band{Offset: -1, Value: -c}),
	)
	return
}

func (UpwindBackward) Advance(n int, ops Operators, U *Field) (err error) {
	return ops.solve(U.Slot(n+1), U.Col(n))
}

type UpwindTrapezoidal struct{}

func (UpwindTrapezoidal) String() string { return SCHEME_UpwindTrapezoidal.Print() }

func (UpwindTrapezoidal) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	ops = newImplicitOperators(
		utils.NewCirculant(g.Xs, utils.Band{Offset: 0, Value: 1 + c/2}, utils.Band{Offset: -1, Value: -c / 2}),
		utils.NewCirculant(g.Xs, utils.Band{Offset: 0, Value: 1 - c/2}, utils.Band{Offset: -1, Value: c / 2}),
	)
	return
}

func (UpwindTrapezoidal) Advance(n int, ops Operators, U *Field) (err error) {
	next := ops.Mats[0].MulVec(U.Slot(n+1), U.Col(n))
	return ops.solve(next, next)
}
