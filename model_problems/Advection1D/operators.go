package Advection1D

import (
	"fmt"

	"github.com/notargets/advect1d/utils"
)

// Operators holds the circulant matrices of a scheme, built once per solve from the Courant number.
// Solver inverts the implicit side and is nil for explicit schemes.
type Operators struct {
	Mats   []utils.CSR
	Solver *utils.CirculantSolver
}

func newExplicitOperators(mats ...utils.CSR) (ops Operators) {
	for i := range mats {
		mats[i].SetReadOnly(fmt.Sprintf("M%d", i+1))
	}
	ops = Operators{Mats: mats}
	return
}

// newImplicitOperators keeps rhs for the explicit side, which may be absent, and diagonalizes lhs
func newImplicitOperators(lhs utils.CSR, rhs ...utils.CSR) (ops Operators) {
	ops = newExplicitOperators(rhs...)
	lhs.SetReadOnly("L")
	ops.Solver = utils.NewCirculantSolver(lhs)
	return
}

// solve writes the solution of L*x = b into dst, b may share storage with dst
func (ops Operators) solve(dst, b []float64) (err error) {
	if ops.Solver == nil {
		panic("implicit solve requested from operators without an implicit side")
	}
	if err = ops.Solver.SolveTo(dst, b); err != nil {
		return fmt.Errorf("%w: operator %s: %w", ErrSingularOperator, ops.Solver.Name(), err)
	}
	return
}
