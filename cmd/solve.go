/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/metrics"
	"github.com/notargets/advect1d/model_problems/Advection1D"
	"github.com/notargets/advect1d/utils"
	"github.com/notargets/advect1d/verification"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Advect an initial profile with one scheme",
	Long: `
Advects the initial profile around the periodic domain with one scheme and reports
the total variation history and the error against the exact solution at the end of
each revolution.

advect1d solve -s lax-wendroff -x 200 -t 2000 -r 2 --graph`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters1D
			sm = &SolveModel{}
		)
		if ip, err = processInput(); err != nil {
			return
		}
		sm.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		sm.Delay = time.Duration(dr) * time.Millisecond
		sm.Revolution, _ = cmd.Flags().GetInt("showRevolution")
		sm.LogFrequency, _ = cmd.Flags().GetInt("logFrequency")
		sm.CSVFile, _ = cmd.Flags().GetString("csvFile")
		sm.MetricsFile, _ = cmd.Flags().GetString("metricsFile")
		sm.Profile, _ = cmd.Flags().GetString("profile")
		sm.Perf, _ = cmd.Flags().GetBool("perf")
		return RunSolve(sm, ip)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().BoolP("graph", "g", false, "display a graph of the solution at each revolution")
	SolveCmd.Flags().IntP("delay", "d", 1000, "milliseconds of delay between graph frames")
	SolveCmd.Flags().Int("showRevolution", 0, "revolution to graph, 0 shows all of them")
	SolveCmd.Flags().Int("logFrequency", 0, "steps between progress lines, 0 is silent")
	SolveCmd.Flags().String("csvFile", "", "write the solution at the start of each revolution to this CSV file")
	SolveCmd.Flags().String("metricsFile", "", "write solver metrics to this file in Prometheus text format")
	SolveCmd.Flags().String("profile", "", "profile the solve: cpu or mem, output goes to the current directory")
	SolveCmd.Flags().Bool("perf", false, "count CPU instructions and cycles of the solve, the solve runs twice (Linux)")
}

type SolveModel struct {
	Graph        bool
	Delay        time.Duration
	Revolution   int
	LogFrequency int
	CSVFile      string
	MetricsFile  string
	Profile      string
	Perf         bool
}

func RunSolve(sm *SolveModel, ip *InputParameters.InputParameters1D) (err error) {
	var (
		g      *FD1D.Grid
		u0     FD1D.Function
		scheme Advection1D.Scheme
		U      *Advection1D.Field
		rec    *metrics.Recorder
	)
	ip.Print()
	if g, err = ip.Grid(); err != nil {
		return
	}
	if u0, err = ip.InitialCondition(); err != nil {
		return
	}
	if scheme, err = ip.NewScheme(); err != nil {
		return
	}
	if len(sm.MetricsFile) != 0 {
		rec = metrics.NewRecorder()
	}
	c := Advection1D.NewAdvection(g, u0, scheme)
	c.LogFrequency = sm.LogFrequency
	c.Metrics = rec

	switch sm.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile type [%s], use cpu or mem", sm.Profile)
	}
	solve := func() (err error) {
		U, err = c.Solve()
		return
	}
	if sm.Perf {
		// The cycle count comes from a second, unrecorded solve
		repeat := func() error {
			c.Metrics = nil
			defer func() { c.Metrics = rec }()
			_, err := c.Solve()
			return err
		}
		err = countSolve(solve, repeat)
	} else {
		err = solve()
	}
	if err != nil {
		return
	}
	fmt.Printf("Solve completed, state = %s\n", c.State())
	fmt.Println(utils.GetMemUsage())
	printSummary(c, U)

	if len(sm.CSVFile) != 0 {
		if err = writeRevolutions(sm.CSVFile, c, U); err != nil {
			return
		}
		fmt.Printf("Wrote revolutions to %s\n", sm.CSVFile)
	}
	if rec != nil {
		if err = rec.WriteFile(sm.MetricsFile); err != nil {
			return
		}
		fmt.Printf("Wrote metrics to %s\n", sm.MetricsFile)
	}
	if sm.Graph {
		pm := Advection1D.DefaultPlotMeta()
		pm.Revolution = sm.Revolution
		pm.FrameDelay = sm.Delay
		c.Plot(U, pm)
		utils.SleepFor(2000)
	}
	return
}

func printSummary(c *Advection1D.Advection, U *Advection1D.Field) {
	var (
		g   = c.Grid
		tvs = verification.TotalVariationSeries(U)
	)
	fmt.Printf("%s, c = %8.5f\n", c.Scheme, g.C)
	if !utils.IsFinite(U.Col(-1)) {
		fmt.Printf("The solution is no longer finite, %s is unstable at this Courant number\n", c.Scheme)
	}
	fmt.Printf("Total variation: initial = %10.6f, final = %10.6f, TVD = %v\n",
		tvs[0], tvs[len(tvs)-1], verification.IsTVD(U))
	for s := 1; s <= g.Revolutions; s++ {
		n := c.GetTemporalIndex(s)
		if n < 0 {
			n = g.Ts - 1
		}
		norms := verification.ErrorNorms(U.Col(n), g.Exact(c.U0, n), g.Dx)
		fmt.Printf("Revolution[%d], step[%d]: %s\n", s, n, norms)
	}
}

// writeRevolutions writes one row per cell: x, then the solution at the start of each revolution
func writeRevolutions(fileName string, c *Advection1D.Advection, U *Advection1D.Field) (err error) {
	var (
		g      = c.Grid
		f      *os.File
		levels = []int{0}
		header = []string{"x", "t=0"}
	)
	for s := 1; s <= g.Revolutions; s++ {
		n := c.GetTemporalIndex(s)
		if n < 0 {
			n = g.Ts - 1
		}
		levels = append(levels, n)
		header = append(header, "t="+strconv.FormatFloat(g.Time(n), 'g', 8, 64))
	}
	if f, err = os.Create(fileName); err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write(header); err != nil {
		return
	}
	row := make([]string, len(levels)+1)
	for i, x := range g.X {
		row[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for j, n := range levels {
			row[j+1] = strconv.FormatFloat(U.At(i, n), 'g', -1, 64)
		}
		if err = w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
	return w.Error()
}
