package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/model_problems/Advection1D"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallRun() *InputParameters.InputParameters1D {
	ip := InputParameters.Defaults()
	ip.Cells = 50
	ip.Steps = 200
	return ip
}

func TestProcessInput(t *testing.T) {
	defer viper.Reset()
	fileName := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("Scheme: leapfrog\nCells: 64\nSteps: 640\n"), 0644))
	viper.Set("inputFile", fileName)
	viper.Set("steps", 320)
	ip, err := processInput()
	require.NoError(t, err)
	assert.Equal(t, "leapfrog", ip.Scheme)
	assert.Equal(t, 64, ip.Cells)
	// Flags and environment override the run file
	assert.Equal(t, 320, ip.Steps)
	assert.Equal(t, "minmod", ip.Limiter)

	viper.Set("scheme", "no-such-scheme")
	_, err = processInput()
	assert.ErrorIs(t, err, Advection1D.ErrUnknownScheme)
}

func TestRunCompare(t *testing.T) {
	results, err := RunCompare(smallRun(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, len(Advection1D.SchemeTypes), len(results))
	for i, st := range Advection1D.SchemeTypes {
		res := results[i]
		assert.Equal(t, st.Print(), res.Scheme)
		assert.NoError(t, res.Err)
		assert.InDelta(t, 0.25, res.C, 1.e-12)
		assert.InDelta(t, 2., res.TV0, 1.e-12)
	}
	assert.True(t, results[Advection1D.SCHEME_UpwindForward].TVD)
	assert.True(t, results[Advection1D.SCHEME_FluxLimiter].TVD)
	assert.False(t, results[Advection1D.SCHEME_LaxWendroff].TVD)
	{
		_, err = RunCompare(smallRun(), []string{"upwind-forward", "bogus"}, nil)
		assert.ErrorIs(t, err, Advection1D.ErrUnknownScheme)
	}
	{ // A singular implicit operator is reported per scheme
		ip := smallRun()
		ip.Velocity = -1
		ip.Steps = 100
		results, err = RunCompare(ip, []string{"upwind-backward", "upwind-forward"}, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, results[0].Err, Advection1D.ErrSingularOperator)
		assert.NoError(t, results[1].Err)
	}
	PrintCompare(results)
}

func TestRunConvergence(t *testing.T) {
	ip := InputParameters.Defaults()
	ip.Scheme = "lax-wendroff"
	ip.InitType = "sine"
	ip.Width = 1
	ip.Cells = 32
	ip.Steps = 64
	rows, err := RunConvergence(ip, 3)
	require.NoError(t, err)
	require.Equal(t, 3, len(rows))
	for k, row := range rows {
		assert.Equal(t, 32<<k, row.Cells)
		assert.InDelta(t, 0.5, row.Courant, 1.e-12)
	}
	// Second order: halving dx divides the error by about four
	for k := 1; k < len(rows); k++ {
		assert.Less(t, rows[k].Norms.L2, rows[k-1].Norms.L2/3)
	}
	var buf bytes.Buffer
	require.NoError(t, WriteConvergence(&buf, rows))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, 4, len(records))
	assert.Equal(t, []string{"scheme", "cells", "courant", "L1", "L2", "LInf"}, records[0])
	assert.Equal(t, "Lax-Wendroff", records[1][0])
	assert.Equal(t, "64", records[2][1])

	_, err = RunConvergence(ip, 0)
	assert.ErrorIs(t, err, InputParameters.ErrBadParameter)
}

func TestWriteRevolutions(t *testing.T) {
	ip := smallRun()
	ip.Revolutions = 2
	ip.Steps = 400
	g, err := ip.Grid()
	require.NoError(t, err)
	u0, err := ip.InitialCondition()
	require.NoError(t, err)
	c := Advection1D.NewAdvection(g, u0, Advection1D.UpwindForward{})
	U, err := c.Solve()
	require.NoError(t, err)
	fileName := filepath.Join(t.TempDir(), "revs.csv")
	require.NoError(t, writeRevolutions(fileName, c, U))
	f, err := os.Open(fileName)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, g.Xs+1, len(records))
	assert.Equal(t, []string{"x", "t=0", "t=1", "t=1.995"}, records[0])
}

func TestRunSolve(t *testing.T) {
	dir := t.TempDir()
	sm := &SolveModel{
		LogFrequency: 50,
		CSVFile:      filepath.Join(dir, "solution.csv"),
		MetricsFile:  filepath.Join(dir, "advect1d.prom"),
	}
	require.NoError(t, RunSolve(sm, smallRun()))
	assert.FileExists(t, sm.CSVFile)
	data, err := os.ReadFile(sm.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `advect1d_march_steps_total{scheme="Flux Limiter"} 199`)

	sm = &SolveModel{Profile: "gpu"}
	assert.Error(t, RunSolve(sm, smallRun()))
}
