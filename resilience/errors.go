package resilience

import "errors"

var (
	// ErrCircuitOpen is returned by Do when the breaker is open and the call
	// was rejected without being attempted.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)
