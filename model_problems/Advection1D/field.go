package Advection1D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Field is the space-time solution: Ts time levels of Xs values each, stored as the rows of one
// dense block. Levels are written once, in order: Slot(n) hands out level n for writing and
// Commit(n) freezes it. As a mat.Matrix it reads as Xs x Ts, one column per time level.
type Field struct {
	Xs, Ts    int
	m         *mat.Dense // Ts x Xs, row n is time level n
	committed int
}

func NewField(xs, ts int) *Field {
	return &Field{
		Xs: xs,
		Ts: ts,
		m:  mat.NewDense(ts, xs, nil),
	}
}

func (f *Field) Dims() (r, c int)    { return f.Xs, f.Ts }
func (f *Field) At(i, n int) float64 { return f.m.At(n, i) }
func (f *Field) T() mat.Matrix       { return f.m }
func (f *Field) Committed() (nc int) { return f.committed }
func (f *Field) Complete() (ok bool) { return f.committed == f.Ts }

func (f *Field) index(n int) (nn int) {
	if n < 0 {
		n += f.Ts
	}
	return n
}

// Col returns a view of committed time level n, negative n counts back from the last level.
// The view must not be written.
func (f *Field) Col(n int) []float64 {
	nn := f.index(n)
	if nn < 0 || nn >= f.committed {
		panic(fmt.Errorf("time level %d has not been committed, %d of %d levels are", n, f.committed, f.Ts))
	}
	return f.m.RawRowView(nn)
}

// ColCopy returns a copy of committed time level n
func (f *Field) ColCopy(n int) (R []float64) {
	col := f.Col(n)
	R = make([]float64, len(col))
	copy(R, col)
	return
}

// Slot returns the storage of the next level to be written, n must equal Committed()
func (f *Field) Slot(n int) []float64 {
	if n != f.committed || n >= f.Ts {
		panic(fmt.Errorf("slot %d is not writable, next writable time level is %d of %d", n, f.committed, f.Ts))
	}
	return f.m.RawRowView(n)
}

func (f *Field) Commit(n int) {
	if n != f.committed || n >= f.Ts {
		panic(fmt.Errorf("cannot commit time level %d, next writable time level is %d of %d", n, f.committed, f.Ts))
	}
	f.committed++
}

// Range returns the min and max over all committed levels
func (f *Field) Range() (fmin, fmax float64) {
	if f.committed == 0 {
		return
	}
	fmin, fmax = floats.Min(f.Col(0)), floats.Max(f.Col(0))
	for n := 1; n < f.committed; n++ {
		col := f.Col(n)
		fmin = min(fmin, floats.Min(col))
		fmax = max(fmax, floats.Max(col))
	}
	return
}
