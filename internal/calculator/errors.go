package calculator

import "errors"

var (
	// ErrInvalidAmount is returned when an amount is negative, too large, NaN or infinite.
	ErrInvalidAmount = errors.New("amount must be a finite number between 0 and 1e15")
	// ErrNonPositiveAmount is returned when a manually submitted amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)
