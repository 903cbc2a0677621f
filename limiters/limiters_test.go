package limiters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiters(t *testing.T) {
	theta := []float64{-1, 0, 0.25, 0.5, 1, 1.5, 2, 3}
	orig := append([]float64{}, theta...)

	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 0}, Upwind(theta, nil))
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1, 1}, LaxWendroff(theta, nil))
	assert.Equal(t, theta, BeamWarming(theta, nil))
	assert.Equal(t, []float64{0, 0.5, 0.625, 0.75, 1, 1.25, 1.5, 2}, Fromm(theta, nil))
	assert.Equal(t, []float64{0, 0, 0.25, 0.5, 1, 1, 1, 1}, Minmod(theta, nil))
	assert.Equal(t, []float64{0, 0, 0.5, 1, 1, 1.5, 2, 2}, Superbee(theta, nil))
	assert.Equal(t, []float64{0, 0, 0.375, 0.75, 1, 1.5, 1.5, 1.5}, Sweby(theta, nil))
	assert.Equal(t, []float64{0, 0, 0.5, 0.75, 1, 1.25, 1.5, 2}, MC(theta, nil))
	assert.InDeltaSlice(t, []float64{0, 0, 0.4, 2. / 3, 1, 1.2, 4. / 3, 1.5}, VanLeer(theta, nil), 1.e-15)
	// Inputs are never modified
	assert.Equal(t, orig, theta)
}

func TestSwebyBeta(t *testing.T) {
	theta := []float64{-2, 0.25, 0.5, 1, 3}
	// beta = 1 is minmod, beta = 2 is superbee
	assert.Equal(t, Minmod(theta, nil), Sweby(theta, Params{"beta": 1}))
	assert.Equal(t, Superbee(theta, nil), Sweby(theta, Params{"beta": 2}))
	assert.Equal(t, 1.5, Params{}.Get("beta", DefaultSwebyBeta))
	assert.Equal(t, 1.2, Params{"beta": 1.2}.Get("beta", DefaultSwebyBeta))
}

func TestLimiterSymmetry(t *testing.T) {
	// phi(theta)/theta == phi(1/theta) for the symmetric limiters
	theta := []float64{0.2, 0.5, 2, 4, 7}
	inv := make([]float64, len(theta))
	for i, th := range theta {
		inv[i] = 1 / th
	}
	for _, lt := range []LimiterType{LIMITER_Minmod, LIMITER_Superbee, LIMITER_MC, LIMITER_VanLeer} {
		phi := lt.Func()(theta, nil)
		phiInv := lt.Func()(inv, nil)
		for i := range theta {
			assert.InDeltaf(t, phi[i]/theta[i], phiInv[i], 1.e-14, "%s at theta = %v", lt.Print(), theta[i])
		}
	}
}

func TestLimiterNames(t *testing.T) {
	lt, err := NewLimiterType(" SuperBee")
	require.NoError(t, err)
	assert.Equal(t, LIMITER_Superbee, lt)
	assert.Equal(t, "Superbee", lt.Print())
	lt, err = NewLimiterType("")
	require.NoError(t, err)
	assert.Equal(t, LIMITER_Minmod, lt)
	lt, err = NewLimiterType("van-leer")
	require.NoError(t, err)
	assert.Equal(t, LIMITER_VanLeer, lt)
	_, err = NewLimiterType("koren")
	assert.ErrorIs(t, err, ErrUnknownLimiter)
	assert.Contains(t, err.Error(), "[koren]")
	assert.Equal(t, "Unknown", LimiterType(99).Print())
	assert.Panics(t, func() { LimiterType(99).Func() })
	assert.True(t, LIMITER_Minmod.TVD())
	assert.False(t, LIMITER_LaxWendroff.TVD())
	for name, lt := range LimiterNames {
		assert.NotNilf(t, lt.Func(), "limiter %s", name)
	}
}
