package FD1D

import (
	"fmt"
	"math"

	"github.com/notargets/advect1d/utils"
)

// Grid is the uniform space-time discretization of a periodic domain [X0, X1) traversed
// Revolutions times at speed A. It is immutable once built.
type Grid struct {
	A                   float64 // Advection velocity
	X0, X1              float64 // Domain bounds, X1 is identified with X0
	Xs, Ts, Revolutions int     // Cells, time levels, domain traversals
	Dx, Dt, T1          float64
	C                   float64 // Courant number A*Dt/Dx, fixed for the whole run
	X, T                []float64
}

func NewGrid(a, x0, x1 float64, xs, revolutions, ts int) (g *Grid, err error) {
	for _, val := range []float64{a, x0, x1} {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			err = fmt.Errorf("a = %v, x0 = %v, x1 = %v: %w", a, x0, x1, ErrNonFinite)
			return
		}
	}
	switch {
	case a == 0:
		err = ErrZeroVelocity
	case x1 <= x0:
		err = fmt.Errorf("x0 = %v, x1 = %v: %w", x0, x1, ErrEmptyDomain)
	case xs <= 0:
		err = fmt.Errorf("xs = %d: %w", xs, ErrNonPositiveCells)
	case ts <= 0:
		err = fmt.Errorf("ts = %d: %w", ts, ErrNonPositiveSteps)
	case revolutions <= 0:
		err = fmt.Errorf("revolutions = %d: %w", revolutions, ErrNonPositiveRevolutions)
	}
	if err != nil {
		return
	}
	L := x1 - x0
	g = &Grid{
		A:           a,
		X0:          x0,
		X1:          x1,
		Xs:          xs,
		Ts:          ts,
		Revolutions: revolutions,
		Dx:          L / float64(xs),
		// Time runs forward for either direction of travel, the sign of A lives in C
		T1: float64(revolutions) * L / math.Abs(a),
	}
	g.Dt = g.T1 / float64(ts)
	g.C = a * g.Dt / g.Dx
	g.X = make([]float64, xs)
	for i := range g.X {
		g.X[i] = x0 + float64(i)*g.Dx
	}
	g.T = utils.Linspace(0, g.T1, ts)
	return
}

// Length of the periodic domain
func (g *Grid) Length() float64 { return g.X1 - g.X0 }

// Time of column n in a solution field
func (g *Grid) Time(n int) float64 { return float64(n) * g.Dt }

// Sample evaluates f at the cell coordinates
func (g *Grid) Sample(f Function) (u []float64) {
	u = make([]float64, g.Xs)
	for i, x := range g.X {
		u[i] = f(x)
	}
	return
}

// Exact returns the analytic solution at time level n, the initial profile translated by A*t
func (g *Grid) Exact(u0 Function, n int) []float64 {
	var (
		shift = g.A * g.Time(n)
		up    = Periodic(g.X0, g.X1, u0)
	)
	return g.Sample(func(x float64) float64 { return up(x - shift) })
}

func (g *Grid) String() string {
	return fmt.Sprintf("a = %8.4f, x = [%8.4f, %8.4f), xs = %d, ts = %d, revolutions = %d, dx = %8.6f, dt = %8.6f, c = %8.5f",
		g.A, g.X0, g.X1, g.Xs, g.Ts, g.Revolutions, g.Dx, g.Dt, g.C)
}
