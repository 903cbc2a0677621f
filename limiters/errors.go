package limiters

import "errors"

// ErrUnknownLimiter indicates a limiter name with no entry in LimiterNames.
var ErrUnknownLimiter = errors.New("limiters: unknown limiter")
