package FD1D

import (
	"fmt"
	"math"
	"strings"
)

// Heaviside step with H(0) = h0
func Heaviside(x, h0 float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 0:
		return 1
	}
	return h0
}

// Tophat of height a and width b centered on c. The left edge belongs to the hat, the right edge does not.
func Tophat(a, b, c float64) Function {
	return func(x float64) float64 {
		return a * (Heaviside(x-c+b/2, 1) - Heaviside(x-c-b/2, 1))
	}
}

// Gaussian of height a and standard deviation b centered on c
func Gaussian(a, b, c float64) Function {
	return func(x float64) float64 {
		return a * math.Exp(-((x-c)*(x-c))/(2*b*b))
	}
}

// Sine with k periods over the unit interval
func Sine(a, k float64) Function {
	return func(x float64) float64 {
		return a * math.Sin(2*math.Pi*k*x)
	}
}

type InitType uint8

const (
	INIT_Tophat InitType = iota
	INIT_Gaussian
	INIT_Sine
)

var (
	InitNames = map[string]InitType{
		"tophat":   INIT_Tophat,
		"gaussian": INIT_Gaussian,
		"sine":     INIT_Sine,
	}
	InitPrintNames = []string{"Tophat", "Gaussian", "Sine"}
)

func (it InitType) Print() (txt string) {
	return InitPrintNames[it]
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return INIT_Tophat, nil
	}
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use initial condition named [%s]: %w", label, ErrUnknownInitType)
	}
	return
}

// Profile builds the initial condition; height, width and center follow the Tophat/Gaussian
// convention, Sine uses width as its number of periods
func (it InitType) Profile(height, width, center float64) Function {
	switch it {
	case INIT_Gaussian:
		return Gaussian(height, width, center)
	case INIT_Sine:
		return Sine(height, width)
	case INIT_Tophat:
		fallthrough
	default:
		return Tophat(height, width, center)
	}
}
