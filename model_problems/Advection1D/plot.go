package Advection1D

import (
	"time"

	"github.com/notargets/advect1d/utils"
)

// PlotMeta configures the interactive chart of a finished solve
type PlotMeta struct {
	Revolution    int           // 0 shows every revolution in turn
	FrameDelay    time.Duration // Pause after each revolution is drawn
	Width, Height int
	ShowExact     bool
}

func DefaultPlotMeta() PlotMeta {
	return PlotMeta{
		FrameDelay: time.Second,
		Width:      1280,
		Height:     960,
		ShowExact:  true,
	}
}

// Plot draws the numerical solution at the start of each revolution, with the translated
// initial condition beside it when pm.ShowExact is set.
func (c *Advection) Plot(U *Field, pm PlotMeta) {
	var (
		g          = c.Grid
		fmin, fmax = U.Range()
		margin     = 0.1 * (fmax - fmin)
	)
	if margin == 0 {
		margin = 1
	}
	lc := utils.NewLineChart(pm.Width, pm.Height, g.X0, g.X1, fmin-margin, fmax+margin)
	revs := []int{pm.Revolution}
	if pm.Revolution == 0 {
		revs = revs[:0]
		for s := 1; s <= g.Revolutions; s++ {
			revs = append(revs, s)
		}
	}
	for _, s := range revs {
		n := c.GetTemporalIndex(s)
		if n < 0 {
			n = g.Ts - 1
		}
		if pm.ShowExact {
			lc.Plot(0, g.X, g.Exact(c.U0, n), 1, "Exact")
		}
		lc.PlotPoints(pm.FrameDelay, g.X, U.Col(n), -1, c.Scheme.String())
	}
}
