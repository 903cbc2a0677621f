package limiters

import (
	"fmt"
	"strings"
)

type LimiterType uint8

const (
	LIMITER_Upwind LimiterType = iota
	LIMITER_LaxWendroff
	LIMITER_BeamWarming
	LIMITER_Fromm
	LIMITER_Minmod
	LIMITER_Superbee
	LIMITER_Sweby
	LIMITER_MC
	LIMITER_VanLeer
)

var (
	LimiterNames = map[string]LimiterType{
		"upwind":       LIMITER_Upwind,
		"laxwendroff":  LIMITER_LaxWendroff,
		"lax-wendroff": LIMITER_LaxWendroff,
		"beamwarming":  LIMITER_BeamWarming,
		"beam-warming": LIMITER_BeamWarming,
		"fromm":        LIMITER_Fromm,
		"minmod":       LIMITER_Minmod,
		"superbee":     LIMITER_Superbee,
		"sweby":        LIMITER_Sweby,
		"mc":           LIMITER_MC,
		"vanleer":      LIMITER_VanLeer,
		"van-leer":     LIMITER_VanLeer,
	}
	LimiterPrintNames = []string{
		"Upwind",
		"Lax-Wendroff",
		"Beam-Warming",
		"Fromm",
		"Minmod",
		"Superbee",
		"Sweby",
		"Monotonized Central",
		"Van Leer",
	}
	limiterFuncs = []Func{
		Upwind,
		LaxWendroff,
		BeamWarming,
		Fromm,
		Minmod,
		Superbee,
		Sweby,
		MC,
		VanLeer,
	}
)

func (lt LimiterType) Print() (txt string) {
	if int(lt) >= len(LimiterPrintNames) {
		return "Unknown"
	}
	return LimiterPrintNames[lt]
}

func (lt LimiterType) Func() Func {
	if int(lt) >= len(limiterFuncs) {
		panic(fmt.Errorf("no limiter function for limiter type %d", lt))
	}
	return limiterFuncs[lt]
}

// TVD reports whether the limiter lies in Sweby's second order TVD region
func (lt LimiterType) TVD() bool {
	switch lt {
	case LIMITER_Minmod, LIMITER_Superbee, LIMITER_Sweby, LIMITER_MC, LIMITER_VanLeer, LIMITER_Upwind:
		return true
	}
	return false
}

func NewLimiterType(label string) (lt LimiterType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return LIMITER_Minmod, nil
	}
	if lt, ok = LimiterNames[label]; !ok {
		err = fmt.Errorf("unable to use limiter named [%s]: %w", label, ErrUnknownLimiter)
	}
	return
}
