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
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/metrics"
	"github.com/notargets/advect1d/model_problems/Advection1D"
	"github.com/notargets/advect1d/verification"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run several schemes on the same problem and tabulate the results",
	Long: `
Runs each scheme on the same grid and initial condition, independent solves run
concurrently, and prints whether each is TVD and its error after the last revolution.

advect1d compare --schemes upwind-forward,lax-wendroff,flux-limiter -l superbee`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip          *InputParameters.InputParameters1D
			labels      []string
			metricsFile string
			rec         *metrics.Recorder
			results     []CompareResult
		)
		if ip, err = processInput(); err != nil {
			return
		}
		labels, _ = cmd.Flags().GetStringSlice("schemes")
		if metricsFile, _ = cmd.Flags().GetString("metricsFile"); len(metricsFile) != 0 {
			rec = metrics.NewRecorder()
		}
		if results, err = RunCompare(ip, labels, rec); err != nil {
			return
		}
		PrintCompare(results)
		if rec != nil {
			err = rec.WriteFile(metricsFile)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	CompareCmd.Flags().StringSlice("schemes", nil, "schemes to compare, all of them when empty")
	CompareCmd.Flags().String("metricsFile", "", "write solver metrics to this file in Prometheus text format")
}

type CompareResult struct {
	Scheme   string
	C        float64
	TV0, TV1 float64
	TVD      bool
	Norms    verification.Norms
	Err      error // Numerical failure of the solve
}

// RunCompare solves ip once per scheme label. A scheme whose solve fails numerically is reported in
// its result, any other error stops the comparison.
func RunCompare(ip *InputParameters.InputParameters1D, labels []string, rec *metrics.Recorder) (results []CompareResult, err error) {
	var (
		eg   errgroup.Group
		runs []InputParameters.InputParameters1D
	)
	if len(labels) == 0 {
		for _, st := range Advection1D.SchemeTypes {
			labels = append(labels, strings.ToLower(strings.ReplaceAll(st.Print(), " ", "-")))
		}
	}
	for _, label := range labels {
		run := *ip
		run.Scheme = label
		if err = run.Validate(); err != nil {
			return
		}
		runs = append(runs, run)
	}
	results = make([]CompareResult, len(runs))
	eg.SetLimit(runtime.NumCPU())
	for i := range runs {
		run := &runs[i]
		eg.Go(func() (err error) {
			g, err := run.Grid()
			if err != nil {
				return
			}
			u0, err := run.InitialCondition()
			if err != nil {
				return
			}
			scheme, err := run.NewScheme()
			if err != nil {
				return
			}
			c := Advection1D.NewAdvection(g, u0, scheme)
			c.Metrics = rec
			res := CompareResult{Scheme: scheme.String(), C: g.C}
			U, solveErr := c.Solve()
			if solveErr != nil {
				var stepErr *Advection1D.StepError
				if !errors.As(solveErr, &stepErr) {
					return solveErr
				}
				res.Err = solveErr
				results[i] = res
				return
			}
			tvs := verification.TotalVariationSeries(U)
			res.TV0, res.TV1 = tvs[0], tvs[len(tvs)-1]
			res.TVD = verification.IsTVD(U)
			n := c.GetTemporalIndex(g.Revolutions)
			if n < 0 {
				n = g.Ts - 1
			}
			res.Norms = verification.ErrorNorms(U.Col(n), g.Exact(c.U0, n), g.Dx)
			results[i] = res
			return
		})
	}
	err = eg.Wait()
	return
}

func PrintCompare(results []CompareResult) {
	fmt.Printf("%-22s %9s %12s %12s %6s %12s %12s %12s\n", "Scheme", "c", "TV(0)", "TV(end)", "TVD", "L1", "L2", "LInf")
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%-22s %9.5f failed: %v\n", res.Scheme, res.C, res.Err)
			continue
		}
		fmt.Printf("%-22s %9.5f %12.6f %12.6f %6v %12.4e %12.4e %12.4e\n",
			res.Scheme, res.C, res.TV0, res.TV1, res.TVD, res.Norms.L1, res.Norms.L2, res.Norms.LInf)
	}
}
