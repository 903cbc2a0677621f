package FD1D

import "errors"

var (
	// ErrZeroVelocity indicates an advection speed of zero, for which no revolution ever completes.
	ErrZeroVelocity = errors.New("FD1D: advection velocity must be nonzero")
	// ErrEmptyDomain indicates x1 <= x0.
	ErrEmptyDomain = errors.New("FD1D: domain upper bound must exceed lower bound")
	// ErrNonPositiveCells indicates a cell count below one.
	ErrNonPositiveCells = errors.New("FD1D: number of cells must be positive")
	// ErrNonPositiveSteps indicates a time step count below one.
	ErrNonPositiveSteps = errors.New("FD1D: number of time steps must be positive")
	// ErrNonPositiveRevolutions indicates a revolution count below one.
	ErrNonPositiveRevolutions = errors.New("FD1D: number of revolutions must be positive")
	// ErrNonFinite indicates a NaN or infinite grid parameter.
	ErrNonFinite = errors.New("FD1D: grid parameters must be finite")
	// ErrUnknownInitType indicates an initial condition name with no entry in InitNames.
	ErrUnknownInitType = errors.New("FD1D: unknown initial condition")
)
