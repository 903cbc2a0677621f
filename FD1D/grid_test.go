package FD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	{
		g, err := NewGrid(1, 0, 1, 100, 1, 1000)
		require.NoError(t, err)
		assert.InDelta(t, 0.01, g.Dx, 1.e-15)
		assert.InDelta(t, 1., g.T1, 1.e-15)
		assert.InDelta(t, 0.001, g.Dt, 1.e-15)
		assert.InDelta(t, 0.1, g.C, 1.e-12)
		require.Equal(t, 100, len(g.X))
		require.Equal(t, 1000, len(g.T))
		assert.Equal(t, 0., g.X[0])
		assert.InDelta(t, 0.99, g.X[99], 1.e-14)
		assert.Equal(t, 0., g.T[0])
		assert.InDelta(t, 1., g.T[999], 1.e-12)
		assert.InDelta(t, 0.5, g.Time(500), 1.e-14)
		assert.InDelta(t, 1., g.Length(), 1.e-15)
	}
	// Courant number only depends on cells, steps and revolutions
	{
		g, err := NewGrid(2.5, -1, 3, 40, 2, 80)
		require.NoError(t, err)
		assert.InDelta(t, 1., g.C, 1.e-12)
		assert.InDelta(t, 3.2, g.T1, 1.e-12)
		assert.InDelta(t, -1., g.X[0], 1.e-15)
	}
	// Leftward travel keeps time positive and flips the Courant number
	{
		g, err := NewGrid(-1, 0, 1, 50, 1, 100)
		require.NoError(t, err)
		assert.True(t, g.Dt > 0)
		assert.InDelta(t, -0.5, g.C, 1.e-12)
	}
}

func TestNewGridRejectsDegenerateInput(t *testing.T) {
	var err error
	_, err = NewGrid(0, 0, 1, 10, 1, 10)
	assert.ErrorIs(t, err, ErrZeroVelocity)
	_, err = NewGrid(1, 1, 1, 10, 1, 10)
	assert.ErrorIs(t, err, ErrEmptyDomain)
	_, err = NewGrid(1, 2, 1, 10, 1, 10)
	assert.ErrorIs(t, err, ErrEmptyDomain)
	_, err = NewGrid(1, 0, 1, 0, 1, 10)
	assert.ErrorIs(t, err, ErrNonPositiveCells)
	_, err = NewGrid(1, 0, 1, 10, 1, -3)
	assert.ErrorIs(t, err, ErrNonPositiveSteps)
	_, err = NewGrid(1, 0, 1, 10, 0, 10)
	assert.ErrorIs(t, err, ErrNonPositiveRevolutions)
	_, err = NewGrid(math.NaN(), 0, 1, 10, 1, 10)
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = NewGrid(1, 0, math.Inf(1), 10, 1, 10)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestSampleExact(t *testing.T) {
	g, err := NewGrid(1, 0, 1, 10, 1, 10)
	require.NoError(t, err)
	u0 := Tophat(1, 0.5, 0.25)
	u := g.Sample(u0)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 0, 0, 0, 0, 0}, u)
	// c = 1 here, so level n is the initial profile moved n cells to the right
	ex := g.Exact(u0, 3)
	assert.Equal(t, []float64{0, 0, 0, 1, 1, 1, 1, 1, 0, 0}, ex)
	// A full revolution returns to the start
	ex = g.Exact(Gaussian(1, 0.1, 0.5), 10)
	assert.InDeltaSlice(t, g.Sample(Gaussian(1, 0.1, 0.5)), ex, 1.e-12)
}
