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
	"io"
	"os"
	"strconv"

	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/model_problems/Advection1D"
	"github.com/notargets/advect1d/verification"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Refine the grid at fixed Courant number and record the error",
	Long: `
Solves the problem on a sequence of grids, doubling cells and time levels together so
the Courant number is unchanged, and writes the error norms after the last revolution
as CSV. The observed order of accuracy is printed by tools/convOrder.

advect1d convergence -s lax-wendroff --initType sine --width 1 --levels 5 -o lw.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip      *InputParameters.InputParameters1D
			levels  int
			outFile string
			rows    []ConvergenceRow
			w       io.Writer = os.Stdout
		)
		if ip, err = processInput(); err != nil {
			return
		}
		levels, _ = cmd.Flags().GetInt("levels")
		outFile, _ = cmd.Flags().GetString("output")
		if rows, err = RunConvergence(ip, levels); err != nil {
			return
		}
		if len(outFile) != 0 && outFile != "-" {
			var f *os.File
			if f, err = os.Create(outFile); err != nil {
				return
			}
			defer f.Close()
			w = f
		}
		return WriteConvergence(w, rows)
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().Int("levels", 4, "number of grids, each twice as fine as the last")
	ConvergenceCmd.Flags().StringP("output", "o", "", "CSV output file, standard output when empty")
}

type ConvergenceRow struct {
	Scheme  string
	Cells   int
	Courant float64
	Norms   verification.Norms
}

func RunConvergence(ip *InputParameters.InputParameters1D, levels int) (rows []ConvergenceRow, err error) {
	var (
		eg errgroup.Group
	)
	if levels < 1 {
		return nil, fmt.Errorf("levels = %d: %w", levels, InputParameters.ErrBadParameter)
	}
	rows = make([]ConvergenceRow, levels)
	for k := 0; k < levels; k++ {
		run := *ip
		run.Cells = ip.Cells << k
		run.Steps = ip.Steps << k
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
			U, err := c.Solve()
			if err != nil {
				return
			}
			n := c.GetTemporalIndex(g.Revolutions)
			if n < 0 {
				n = g.Ts - 1
			}
			rows[k] = ConvergenceRow{
				Scheme:  scheme.String(),
				Cells:   g.Xs,
				Courant: g.C,
				Norms:   verification.ErrorNorms(U.Col(n), g.Exact(c.U0, n), g.Dx),
			}
			return
		})
	}
	err = eg.Wait()
	return
}

func WriteConvergence(w io.Writer, rows []ConvergenceRow) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write([]string{"scheme", "cells", "courant", "L1", "L2", "LInf"}); err != nil {
		return
	}
	for _, row := range rows {
		rec := []string{
			row.Scheme,
			strconv.Itoa(row.Cells),
			strconv.FormatFloat(row.Courant, 'g', 8, 64),
			strconv.FormatFloat(row.Norms.L1, 'e', 10, 64),
			strconv.FormatFloat(row.Norms.L2, 'e', 10, 64),
			strconv.FormatFloat(row.Norms.LInf, 'e', 10, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
