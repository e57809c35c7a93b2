package model

import "errors"

// Sentinel errors for the analysis core. Callers match with errors.Is;
// wrapping sites add symbol/index context via fmt.Errorf and %w.
var (
	// ErrEmptySeries reports a nil or zero-length input series.
	ErrEmptySeries = errors.New("empty series")

	// ErrNonMonotonic reports timestamps that are not strictly increasing.
	ErrNonMonotonic = errors.New("non-monotonic timestamps")

	// ErrInvalidInput reports any other malformed input, such as a
	// non-positive denominator in a percentage calculation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData reports a series shorter than the minimum bars
	// required for the requested computation.
	ErrInsufficientData = errors.New("insufficient data")
)
