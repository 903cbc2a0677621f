package Advection1D

import (
	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/utils"
	"gonum.org/v1/gonum/floats"
)

type leapfrogState uint8

const (
	leapfrogBootstrap leapfrogState = iota
	leapfrogSteady
)

// Leapfrog is the three level centered scheme U(n+1) = U(n-1) + M*U(n). The first step has no
// U(-1) and is taken with UpwindForward, after which the scheme runs on its own rule.
type Leapfrog struct {
	state        leapfrogState
	bootstrap    UpwindForward
	bootstrapOps Operators
}

func (s *Leapfrog) String() string { return SCHEME_Leapfrog.Print() }

// BuildOperators also rewinds the scheme to its bootstrap step, so a Leapfrog can be reused across solves
func (s *Leapfrog) BuildOperators(g *FD1D.Grid) (ops Operators, err error) {
	c := g.C
	s.state = leapfrogBootstrap
	if s.bootstrapOps, err = s.bootstrap.BuildOperators(g); err != nil {
		return
	}
	ops = newExplicitOperators(
		utils.NewCirculant(g.Xs, utils.Band{Offset: 1, Value: -c}, utils.Band{Offset: -1, Value: c}),
	)
	return
}

func (s *Leapfrog) Advance(n int, ops Operators, U *Field) (err error) {
	switch s.state {
	case leapfrogBootstrap:
		if err = s.bootstrap.Advance(n, s.bootstrapOps, U); err != nil {
			return
		}
		s.state = leapfrogSteady
	case leapfrogSteady:
		if n < 1 {
			panic("leapfrog steady step requested before the bootstrap step")
		}
		u1 := U.Slot(n + 1)
		ops.Mats[0].MulVec(u1, U.Col(n))
		floats.Add(u1, U.Col(n-1))
	}
	return
}
