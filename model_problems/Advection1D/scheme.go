package Advection1D

import (
	"fmt"
	"strings"

	"github.com/notargets/advect1d/FD1D"
	"github.com/notargets/advect1d/limiters"
)

// Scheme advances a periodic advection solution one time level at a time. BuildOperators is called
// once per solve, Advance is then called for n = 0, 1, ... and writes column n+1 of U.
type Scheme interface {
	BuildOperators(g *FD1D.Grid) (ops Operators, err error)
	Advance(n int, ops Operators, U *Field) (err error)
	String() string
}

type SchemeType uint8

const (
	SCHEME_UpwindForward SchemeType = iota
	SCHEME_UpwindBackward
	SCHEME_UpwindTrapezoidal
	SCHEME_CenteredForward
	SCHEME_CenteredBackward
	SCHEME_CenteredTrapezoidal
	SCHEME_LaxWendroff
	SCHEME_Leapfrog
	SCHEME_FluxLimiter
)

var (
	SchemeNames = map[string]SchemeType{
		"upwind-forward":       SCHEME_UpwindForward,
		"upwind":               SCHEME_UpwindForward,
		"upwind-backward":      SCHEME_UpwindBackward,
		"upwind-trapezoidal":   SCHEME_UpwindTrapezoidal,
		"centered-forward":     SCHEME_CenteredForward,
		"centered-backward":    SCHEME_CenteredBackward,
		"centered-trapezoidal": SCHEME_CenteredTrapezoidal,
		"crank-nicolson":       SCHEME_CenteredTrapezoidal,
		"lax-wendroff":         SCHEME_LaxWendroff,
		"leapfrog":             SCHEME_Leapfrog,
		"flux-limiter":         SCHEME_FluxLimiter,
	}
	SchemePrintNames = []string{
		"Upwind Forward", "Upwind Backward", "Upwind Trapezoidal",
		"Centered Forward", "Centered Backward", "Centered Trapezoidal",
		"Lax-Wendroff", "Leapfrog", "Flux Limiter",
	}
	// SchemeTypes lists every scheme in declaration order
	SchemeTypes = []SchemeType{
		SCHEME_UpwindForward, SCHEME_UpwindBackward, SCHEME_UpwindTrapezoidal,
		SCHEME_CenteredForward, SCHEME_CenteredBackward, SCHEME_CenteredTrapezoidal,
		SCHEME_LaxWendroff, SCHEME_Leapfrog, SCHEME_FluxLimiter,
	}
)

func (st SchemeType) Print() (txt string) {
	if int(st) >= len(SchemePrintNames) {
		return "Unknown"
	}
	txt = SchemePrintNames[st]
	return
}

// Implicit reports whether a step needs a linear solve
func (st SchemeType) Implicit() bool {
	switch st {
	case SCHEME_UpwindBackward, SCHEME_UpwindTrapezoidal, SCHEME_CenteredBackward, SCHEME_CenteredTrapezoidal:
		return true
	}
	return false
}

func NewSchemeType(label string) (st SchemeType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return SCHEME_UpwindForward, nil
	}
	if st, ok = SchemeNames[label]; !ok {
		err = fmt.Errorf("unable to use scheme named %s: %w", label, ErrUnknownScheme)
	}
	return
}

// NewScheme returns a fresh scheme of type st. The flux limiter scheme is built with the minmod
// limiter, use NewFluxLimiter directly to choose another.
func NewScheme(st SchemeType) Scheme {
	switch st {
	case SCHEME_UpwindForward:
		return UpwindForward{}
	case SCHEME_UpwindBackward:
		return UpwindBackward{}
	case SCHEME_UpwindTrapezoidal:
		return UpwindTrapezoidal{}
	case SCHEME_CenteredForward:
		return CenteredForward{}
	case SCHEME_CenteredBackward:
		return CenteredBackward{}
	case SCHEME_CenteredTrapezoidal:
		return CenteredTrapezoidal{}
	case SCHEME_LaxWendroff:
		return LaxWendroff{}
	case SCHEME_Leapfrog:
		return &Leapfrog{}
	case SCHEME_FluxLimiter:
		return NewFluxLimiter(limiters.Minmod, nil, DefaultEpsilon)
	default:
		panic(fmt.Errorf("unknown scheme type %d", st))
	}
}
