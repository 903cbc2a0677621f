package Advection1D

import (
	"errors"
	"fmt"
)

var (
	ErrSingularOperator = errors.New("Advection1D: implicit operator is singular or ill-conditioned")
	ErrUnknownScheme    = errors.New("Advection1D: unknown scheme")
)

// StepError is returned by Solve when a time step fails, it carries the step that failed
type StepError struct {
	Step    int
	Time    float64
	Scheme  string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: step %d at time %8.5f: %v", e.Scheme, e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
