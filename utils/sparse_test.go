package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCirculant(t *testing.T) {
	// Upwind style operator, the -1 band wraps into the upper right corner
	{
		n := 5
		M := NewCirculant(n, Band{0, 0.5}, Band{-1, 0.25})
		nr, nc := M.Dims()
		require.Equal(t, n, nr)
		require.Equal(t, n, nc)
		fmt.Printf("M = \n%v\n", mat.Formatted(M, mat.Squeeze()))
		for i := 0; i < n; i++ {
			assert.Equal(t, 0.5, M.At(i, i))
			assert.Equal(t, 0.25, M.At(i, Wrap(i-1, n)))
		}
		assert.Equal(t, 0.25, M.At(0, n-1))
		assert.Equal(t, 0., M.At(n-1, 0))
		assert.Equal(t, 2*n, len(M.Data()))
	}
	// Centered operator couples both corners
	{
		n := 4
		M := NewCirculant(n, Band{1, -1}, Band{-1, 1})
		assert.Equal(t, 1., M.At(0, n-1))
		assert.Equal(t, -1., M.At(n-1, 0))
		assert.Equal(t, -1., M.At(1, 2))
		assert.Equal(t, 1., M.At(2, 1))
		assert.Equal(t, 0., M.At(1, 1))
	}
	// On two cells the +1 and -1 bands land on the same entry and are summed
	{
		M := NewCirculant(2, Band{1, 2}, Band{-1, 3})
		assert.Equal(t, 5., M.At(0, 1))
		assert.Equal(t, 5., M.At(1, 0))
	}
	// Zero valued bands are not stored
	{
		M := NewCirculant(3, Band{0, 1}, Band{1, 0})
		assert.Equal(t, 3, len(M.Data()))
	}
}

func TestCSRMulVec(t *testing.T) {
	var (
		n = 6
		x = []float64{1, 2, 3, 4, 5, 6}
	)
	M := NewCirculant(n, Band{-1, 1})
	y := M.MulVec(nil, x)
	assert.Equal(t, []float64{6, 1, 2, 3, 4, 5}, y)
	assert.Equal(t, Roll(x, 1), y)

	// dst is overwritten, not accumulated
	y = M.MulVec(y, x)
	assert.Equal(t, []float64{6, 1, 2, 3, 4, 5}, y)

	y = M.MulVecAdd(y, x)
	assert.Equal(t, []float64{12, 2, 4, 6, 8, 10}, y)

	assert.Panics(t, func() { M.MulVec(nil, []float64{1, 2}) })

	// Agrees with the dense product
	A := NewCirculant(n, Band{-1, 0.3}, Band{0, 0.4}, Band{1, -0.2})
	var yd mat.VecDense
	yd.MulVec(mat.DenseCopyOf(A), mat.NewVecDense(n, x))
	assert.InDeltaSlice(t, yd.RawVector().Data, A.MulVec(nil, x), 1.e-14)
}

func TestCSRReadOnly(t *testing.T) {
	M := NewCirculant(3, Band{0, 2})
	M.Scale(0.5)
	assert.Equal(t, 1., M.At(1, 1))
	M.SetReadOnly("M")
	assert.Equal(t, "M", M.Name())
	assert.Panics(t, func() { M.Scale(2) })
}

func TestCirculantSolver(t *testing.T) {
	var (
		n = 8
		b = []float64{1, 0, 0, 2, 0, 0, 3, 0}
	)
	// Diagonally dominant, well conditioned
	{
		A := NewCirculant(n, Band{0, 1.5}, Band{-1, -0.5})
		A.SetReadOnly("A")
		cs := NewCirculantSolver(A)
		assert.Equal(t, "A", cs.Name())
		// Eigenvalues 1.5 - 0.5*exp(-i*theta) lie between 1 and 2
		assert.InDelta(t, 2., cs.Cond(), 1.e-12)
		x := make([]float64, n)
		require.NoError(t, cs.SolveTo(x, b))
		assert.InDeltaSlice(t, b, A.MulVec(nil, x), 1.e-12)
		// In place
		y := make([]float64, n)
		copy(y, b)
		require.NoError(t, cs.SolveTo(y, y))
		assert.InDeltaSlice(t, x, y, 1.e-15)
	}
	// Both wrap corners, odd size
	{
		n := 7
		A := NewCirculant(n, Band{0, 1}, Band{1, 0.3}, Band{-1, -0.3})
		cs := NewCirculantSolver(A)
		bb := []float64{1, -2, 0, 4, 0.5, 0, 3}
		x := make([]float64, n)
		require.NoError(t, cs.SolveTo(x, bb))
		assert.InDeltaSlice(t, bb, A.MulVec(nil, x), 1.e-12)
	}
	// 0.5*(I + S) is singular on an even number of cells
	{
		A := NewCirculant(n, Band{0, 0.5}, Band{-1, 0.5})
		cs := NewCirculantSolver(A)
		assert.True(t, math.IsInf(cs.Cond(), 1))
		x := make([]float64, n)
		err := cs.SolveTo(x, b)
		require.Error(t, err)
		var cond mat.Condition
		assert.ErrorAs(t, err, &cond)
		assert.Equal(t, make([]float64, n), x)
	}
	assert.Panics(t, func() {
		NewCirculantSolver(NewCirculant(n, Band{0, 1})).SolveTo(make([]float64, n), b[:3])
	})
}

func TestCirculantSolverLarge(t *testing.T) {
	// Storage is linear in n, a dense factorization of this size would need 32 GiB
	var (
		n = 1 << 16
		c = 3.
	)
	A := NewCirculant(n, Band{0, 1 + c}, Band{-1, -c})
	cs := NewCirculantSolver(A)
	assert.InDelta(t, 1+2*c, cs.Cond(), 1.e-9)
	b := make([]float64, n)
	for i := range b {
		b[i] = math.Sin(2*math.Pi*float64(i)/float64(n)) + float64(i%7)
	}
	x := make([]float64, n)
	require.NoError(t, cs.SolveTo(x, b))
	assert.InDeltaSlice(t, b, A.MulVec(nil, x), 1.e-9)
}
