package verification

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norms are grid function norms of an error vector, L1 and L2 scaled by dx to approximate the integrals
type Norms struct {
	L1, L2, LInf float64
}

func (n Norms) String() string {
	return fmt.Sprintf("L1 = %10.6e, L2 = %10.6e, LInf = %10.6e", n.L1, n.L2, n.LInf)
}

func ErrorNorms(num, exact []float64, dx float64) (n Norms) {
	if len(num) != len(exact) {
		panic(fmt.Errorf("length mismatch between numerical (%d) and exact (%d) solutions", len(num), len(exact)))
	}
	n = Norms{
		L1:   dx * floats.Distance(num, exact, 1),
		L2:   math.Sqrt(dx) * floats.Distance(num, exact, 2),
		LInf: floats.Distance(num, exact, math.Inf(1)),
	}
	return
}
