package Advection1D

import (
	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/utils"
)

// Centered schemes use the symmetric difference (u[i+1] - u[i-1]) / 2dx

// CenteredForward is unconditionally unstable for the advection equation, it is kept as a reference
type CenteredForward struct{}

func (CenteredForward) String() string { return SCHEME_CenteredForward.Print() }

func (CenteredForward) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	ops = newExplicitOperators(
		utils.NewCirculant(g.Xs,
			utils.Band{Offset: 0, Value: 1},
			utils.Band{Offset: 1, Value: -c / 2},
			utils.Band{Offset: -1, Value: c / 2}),
	)
	return
}

func (CenteredForward) Advance(n int, ops Operators, U *Field) (err error) {
	ops.Mats[0].MulVec(U.Slot(n+1), U.Col(n))
	return
}

type CenteredBackward struct{}

func (CenteredBackward) String() string { return SCHEME_CenteredBackward.Print() }

func (CenteredBackward) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	ops = newImplicitOperators(
		utils.NewCirculant(g.Xs,
			utils.Band{Offset: 0, Value: 1},
			utils.Band{Offset: 1, Value: c / 2},
			utils.Band{Offset: -1, Value: -c / 2}),
	)
	return
}

func (CenteredBackward) Advance(n int, ops Operators, U *Field) (err error) {
	return ops.solve(U.Slot(n+1), U.Col(n))
}

// CenteredTrapezoidal is Crank-Nicolson: half the centered difference at each time level
type CenteredTrapezoidal struct{}

func (CenteredTrapezoidal) String() string { return SCHEME_CenteredTrapezoidal.Print() }

func (CenteredTrapezoidal) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	ops = newImplicitOperators(
		utils.NewCirculant(g.Xs,
			utils.Band{Offset: 0, Value: 1},
			utils.Band{Offset: 1, Value: c / 4},
			utils.Band{Offset: -1, Value: -c / 4}),
		utils.NewCirculant(g.Xs,
			utils.Band{Offset: 0, Value: 1},
			utils.Band{Offset: 1, Value: -c / 4},
			utils.Band{Offset: -1, Value: c / 4}),
	)
	return
}

func (CenteredTrapezoidal) Advance(n int, ops Operators, U *Field) (err error) {
	next := ops.Mats[0].MulVec(U.Slot(n+1), U.Col(n))
	return ops.solve(next, next)
}
