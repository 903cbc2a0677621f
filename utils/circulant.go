package utils

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// CirculantSolver solves M*x = b for a circulant M. The discrete Fourier transform diagonalizes
// every circulant matrix, so a solve is a forward transform, a division by the eigenvalues and an
// inverse transform, O(n log n) in time and O(n) in storage.
type CirculantSolver struct {
	name  string
	n     int
	fft   *fourier.FFT
	eig   []complex128 // Eigenvalues for frequencies 0..n/2, the rest are their conjugates
	cond  float64
	coeff []complex128
	work  []float64
}

// NewCirculantSolver reads the eigenvalues of M from its first row, M must be circulant as built
// by NewCirculant.
func NewCirculantSolver(M CSR) (cs *CirculantSolver) {
	var (
		n, _ = M.Dims()
		raw  = M.RawMatrix()
	)
	cs = &CirculantSolver{
		name:  M.Name(),
		n:     n,
		fft:   fourier.NewFFT(n),
		eig:   make([]complex128, n/2+1),
		coeff: make([]complex128, n/2+1),
		work:  make([]float64, n),
	}
	// eig[k] = sum_j M[0][j] * exp(2*pi*i*j*k/n)
	for jj := raw.Indptr[0]; jj < raw.Indptr[1]; jj++ {
		j, v := raw.Ind[jj], raw.Data[jj]
		for k := range cs.eig {
			cs.eig[k] += complex(v, 0) * rootOfUnity(j*k%n, n)
		}
	}
	var eMin, eMax = math.Inf(1), 0.
	for _, e := range cs.eig {
		a := cmplx.Abs(e)
		eMin = math.Min(eMin, a)
		eMax = math.Max(eMax, a)
	}
	// Circulant matrices are normal, the 2-norm condition number is the eigenvalue modulus ratio
	switch {
	case eMin == 0:
		cs.cond = math.Inf(1)
	default:
		cs.cond = eMax / eMin
	}
	return
}

// rootOfUnity returns exp(2*pi*i*m/n), exact where the result lies on an axis
func rootOfUnity(m, n int) complex128 {
	switch {
	case m == 0:
		return 1
	case 2*m == n:
		return -1
	case 4*m == n:
		return 1i
	case 4*m == 3*n:
		return -1i
	}
	s, c := math.Sincos(2 * math.Pi * float64(m) / float64(n))
	return complex(c, s)
}

func (cs *CirculantSolver) Name() string  { return cs.name }
func (cs *CirculantSolver) Cond() float64 { return cs.cond }

// SolveTo writes the solution of M*x = b into dst, which may share storage with b. A singular or
// ill-conditioned M returns a mat.Condition error and leaves dst untouched.
func (cs *CirculantSolver) SolveTo(dst, b []float64) (err error) {
	if len(dst) != cs.n || len(b) != cs.n {
		panic(fmt.Errorf("dimension mismatch: operator \"%s\" is %d x %d, have b[%d] and x[%d]",
			cs.name, cs.n, cs.n, len(b), len(dst)))
	}
	if cs.cond > mat.ConditionTolerance {
		return mat.Condition(cs.cond)
	}
	cs.fft.Coefficients(cs.coeff, b)
	for k := range cs.coeff {
		cs.coeff[k] /= cs.eig[k]
	}
	cs.fft.Sequence(cs.work, cs.coeff)
	scale := 1 / float64(cs.n)
	for i, v := range cs.work {
		dst[i] = v * scale
	}
	return
}
