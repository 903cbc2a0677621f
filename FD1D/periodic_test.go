package FD1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodic(t *testing.T) {
	var (
		x0, x1 = -0.5, 1.5
		L      = x1 - x0
	)
	g := Periodic(x0, x1, Gaussian(1, 0.2, 0.3))
	for _, x := range []float64{-7.3, -1, -0.5, 0, 0.3, 1.2, 1.5, 4.9, 123.4} {
		for _, k := range []float64{-3, -1, 1, 2, 10} {
			assert.InDeltaf(t, g(x), g(x+k*L), 1.e-9, "x = %v, k = %v", x, k)
		}
	}
	// Inside the domain the periodic function is the function itself
	f := Gaussian(1, 0.2, 0.3)
	for _, x := range []float64{-0.5, 0, 0.3, 1.49} {
		assert.InDelta(t, f(x), g(x), 1.e-15)
	}
	// Left edge maps onto itself, right edge onto the left edge
	h := Periodic(0, 1, func(x float64) float64 { return x })
	assert.Equal(t, 0., h(0))
	assert.Equal(t, 0., h(1))
	assert.InDelta(t, 0.75, h(-0.25), 1.e-15)
	assert.InDelta(t, 0.25, h(3.25), 1.e-15)
	assert.Equal(t, 0., h(-1.e-20))
}

func TestProfiles(t *testing.T) {
	th := Tophat(2, 1, 0)
	assert.Equal(t, 2., th(-0.5))
	assert.Equal(t, 2., th(0))
	assert.Equal(t, 0., th(0.5))
	assert.Equal(t, 0., th(0.75))
	assert.Equal(t, 0., th(-0.75))

	ga := Gaussian(3, 1, 1)
	assert.Equal(t, 3., ga(1))
	assert.InDelta(t, 3*math.Exp(-0.5), ga(2), 1.e-15)

	si := Sine(1, 2)
	assert.InDelta(t, 1., si(0.125), 1.e-15)

	assert.Equal(t, 1., Heaviside(0, 1))
	assert.Equal(t, 0.5, Heaviside(0, 0.5))
}

func TestInitType(t *testing.T) {
	it, err := NewInitType(" Gaussian ")
	require.NoError(t, err)
	assert.Equal(t, INIT_Gaussian, it)
	assert.Equal(t, "Gaussian", it.Print())
	it, err = NewInitType("")
	require.NoError(t, err)
	assert.Equal(t, INIT_Tophat, it)
	_, err = NewInitType("sawtooth")
	assert.ErrorIs(t, err, ErrUnknownInitType)
	assert.Contains(t, err.Error(), "[sawtooth]")
	assert.Equal(t, 1., INIT_Tophat.Profile(1, 0.5, 0.5)(0.5))
	assert.InDelta(t, 0., INIT_Sine.Profile(1, 1, 0)(0.5), 1.e-15)
}
