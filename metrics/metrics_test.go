package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 5; i++ {
		r.ObserveStep("Upwind Forward")
	}
	r.ObserveSolve("Upwind Forward", 20*time.Millisecond, nil)
	r.ObserveSolve("Upwind Backward", time.Millisecond, errors.New("singular"))
	r.SetTotalVariation("Upwind Forward", 1.5)
	r.SetCourant("Upwind Forward", 0.1)

	assert.Equal(t, 5., testutil.ToFloat64(r.steps.WithLabelValues("Upwind Forward")))
	assert.Equal(t, 1., testutil.ToFloat64(r.solves.WithLabelValues("Upwind Forward", "ok")))
	assert.Equal(t, 1., testutil.ToFloat64(r.solves.WithLabelValues("Upwind Backward", "error")))
	assert.Equal(t, 1.5, testutil.ToFloat64(r.totalVariation.WithLabelValues("Upwind Forward")))
	assert.Equal(t, 0.1, testutil.ToFloat64(r.courant.WithLabelValues("Upwind Forward")))

	fileName := filepath.Join(t.TempDir(), "advect1d.prom")
	require.NoError(t, r.WriteFile(fileName))
	data, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "advect1d_march_steps_total"))
	assert.True(t, strings.Contains(string(data), "advect1d_solution_total_variation"))
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveStep("x")
		r.ObserveSolve("x", time.Second, nil)
		r.SetTotalVariation("x", 1)
		r.SetCourant("x", 1)
	})
	assert.NoError(t, r.WriteFile("unused"))
}
