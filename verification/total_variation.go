package verification

import (
	"math"

	"github.com/notargets/advect1d/utils"
	"gonum.org/v1/gonum/mat"
)

// TotalVariation is the sum of |col[i-1] - col[i]| around the periodic domain
func TotalVariation(col []float64) (tv float64) {
	var (
		n = len(col)
	)
	for i := 0; i < n; i++ {
		tv += math.Abs(col[utils.Wrap(i-1, n)] - col[i])
	}
	return
}

// TotalVariationSeries returns the total variation of every column of U, an Xs x Ts solution
func TotalVariationSeries(U mat.Matrix) (tvs []float64) {
	var (
		Xs, Ts = U.Dims()
		col    = make([]float64, Xs)
	)
	tvs = make([]float64, Ts)
	for n := 0; n < Ts; n++ {
		mat.Col(col, n, U)
		tvs[n] = TotalVariation(col)
	}
	return
}

// IsTVD reports whether the total variation of U never grows from one column to the next by more
// than tol, which defaults to utils.NODETOL.
func IsTVD(U mat.Matrix, tolO ...float64) bool {
	var (
		tol = utils.NODETOL
	)
	if len(tolO) != 0 {
		tol = tolO[0]
	}
	tvs := TotalVariationSeries(U)
	for n := 1; n < len(tvs); n++ {
		if tvs[n] > tvs[n-1]+tol {
			return false
		}
	}
	return true
}
