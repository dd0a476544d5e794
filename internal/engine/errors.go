package engine

import "errors"

// Sentinel errors returned by the engine. Use errors.Is to test for them.
var (
	// ErrTypeMismatch reports a leaf constructed from a non-numeric input.
	ErrTypeMismatch = errors.New("value is not a numeric scalar")

	// ErrInvalidDomain reports a derivative rule evaluating a
	// mathematically undefined expression, such as the logarithm of a
	// non-positive number inside the power rule.
	ErrInvalidDomain = errors.New("derivative undefined on this domain")
)
