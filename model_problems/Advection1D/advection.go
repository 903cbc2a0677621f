package Advection1D

import (
	"fmt"
	"math"
	"time"

	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/metrics"
	"github.com/notargets/advect1d/utils"
	"github.com/notargets/advect1d/verification"
	"gonum.org/v1/gonum/floats"
)

type MarchState uint8

const (
	Initializing MarchState = iota
	Stepping
	Done
	Failed
)

var MarchStateNames = []string{"Initializing", "Stepping", "Done", "Failed"}

func (ms MarchState) String() string { return MarchStateNames[ms] }

// Advection solves u_t + a*u_x = 0 on a periodic grid by marching a Scheme through every time level
type Advection struct {
	Grid         *FD1D.Grid
	U0           FD1D.Function // Periodic extension of the initial condition
	Scheme       Scheme
	LogFrequency int               // Steps between progress lines, 0 is silent
	Metrics      *metrics.Recorder // Optional
	state        MarchState
}

func NewAdvection(g *FD1D.Grid, u0 FD1D.Function, scheme Scheme) *Advection {
	return &Advection{
		Grid:   g,
		U0:     FD1D.Periodic(g.X0, g.X1, u0),
		Scheme: scheme,
	}
}

func (c *Advection) State() MarchState { return c.state }

// Solve builds the scheme operators, samples the initial condition into level 0 and advances
// levels 1 through Ts-1 in order. A failed step aborts the solve and no field is returned.
func (c *Advection) Solve() (U *Field, err error) {
	var (
		g      = c.Grid
		name   = c.Scheme.String()
		ops    Operators
		tstart = time.Now()
	)
	defer func() { c.Metrics.ObserveSolve(name, time.Since(tstart), err) }()
	c.state = Initializing
	if ops, err = c.Scheme.BuildOperators(g); err != nil {
		c.state = Failed
		return nil, err
	}
	c.Metrics.SetCourant(name, g.C)
	U = NewField(g.Xs, g.Ts)
	copy(U.Slot(0), g.Sample(c.U0))
	U.Commit(0)
	if c.LogFrequency > 0 {
		fmt.Printf("Advection1D, scheme = %s\n%s\n", name, g)
		c.logStep(U, 0)
	}
	c.state = Stepping
	for n := 0; n < g.Ts-1; n++ {
		if err = c.Scheme.Advance(n, ops, U); err != nil {
			c.state = Failed
			return nil, &StepError{Step: n, Time: g.Time(n), Scheme: name, Wrapped: err}
		}
		U.Commit(n + 1)
		c.Metrics.ObserveStep(name)
		if c.LogFrequency > 0 && (n+1)%c.LogFrequency == 0 {
			c.logStep(U, n+1)
		}
	}
	c.state = Done
	c.Metrics.SetTotalVariation(name, verification.TotalVariation(U.Col(-1)))
	return
}

func (c *Advection) logStep(U *Field, n int) {
	col := U.Col(n)
	if utils.IsNan(col) {
		fmt.Printf("NaN in solution at step[%d]\n", n)
	}
	fmt.Printf("Time = %8.4f, step[%d], umin = %8.4f, umax = %8.4f, TV = %8.5f\n",
		c.Grid.Time(n), n, floats.Min(col), floats.Max(col), verification.TotalVariation(col))
}

// GetTemporalIndex returns the time level at which the solution has travelled s times around the
// domain, or -1 when that level is past the end of the run.
func (c *Advection) GetTemporalIndex(s int) (n int) {
	var (
		g = c.Grid
	)
	// The nudge keeps exact multiples from rounding down a level
	n = int(math.Floor(float64(s)*g.Length()/(math.Abs(g.A)*g.Dt) + 1.e-9))
	if n < 0 || n >= g.Ts {
		return -1
	}
	return
}
