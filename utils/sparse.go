package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// Band is one diagonal of a periodic banded matrix: Value is placed at (i, (i+Offset) mod n) for all rows i
type Band struct {
	Offset int
	Value  float64
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// NewCirculant assembles an n x n matrix from bands with periodic wraparound, so an
// offset of -1 also couples row 0 to column n-1 and +1 couples row n-1 to column 0.
// Bands that land on the same entry (n < 3) are summed.
func NewCirculant(n int, bands ...Band) (R CSR) {
	if n <= 0 {
		panic(fmt.Errorf("circulant matrix needs a positive dimension, have %d", n))
	}
	dok := sparse.NewDOK(n, n)
	for _, b := range bands {
		if b.Value == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			j := Wrap(i+b.Offset, n)
			dok.Set(i, j, dok.At(i, j)+b.Value)
		}
	}
	R = CSR{
		M:    dok.ToCSR(),
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
func (m CSR) Data() []float64 {
	return m.RawMatrix().Data
}

func (m *CSR) SetReadOnly(name ...string) CSR {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m CSR) Name() string { return m.name }

func (m CSR) Scale(a float64) CSR { // Changes receiver
	m.checkWritable()
	data := m.Data()
	for i := range data {
		data[i] *= a
	}
	return m
}

// MulVec computes dst = M*x and returns dst, allocating it when nil
func (m CSR) MulVec(dst, x []float64) []float64 {
	var (
		nr, nc = m.Dims()
		raw    = m.RawMatrix()
	)
	if len(x) != nc {
		panic(fmt.Errorf("dimension mismatch: matrix \"%s\" has %d columns, vector has length %d", m.name, nc, len(x)))
	}
	if dst == nil {
		dst = make([]float64, nr)
	}
	for i := 0; i < nr; i++ {
		var sum float64
		for jj := raw.Indptr[i]; jj < raw.Indptr[i+1]; jj++ {
			sum += raw.Data[jj] * x[raw.Ind[jj]]
		}
		dst[i] = sum
	}
	return dst
}

// MulVecAdd computes dst += M*x
func (m CSR) MulVecAdd(dst, x []float64) []float64 {
	var (
		nr, _ = m.Dims()
		raw   = m.RawMatrix()
	)
	for i := 0; i < nr; i++ {
		for jj := raw.Indptr[i]; jj < raw.Indptr[i+1]; jj++ {
			dst[i] += raw.Data[jj] * x[raw.Ind[jj]]
		}
	}
	return dst
}

func (m CSR) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
