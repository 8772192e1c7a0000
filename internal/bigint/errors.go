package bigint

import "errors"

var (
	// ErrInvalidInput is returned when a text representation cannot be parsed.
	ErrInvalidInput = errors.New("bigint: invalid input")

	// ErrUnderflow is returned by Sub when the subtrahend exceeds the minuend.
	ErrUnderflow = errors.New("bigint: subtraction underflow")

	// ErrZeroModulus is returned by Mod when the modulus is zero.
	ErrZeroModulus = errors.New("bigint: zero modulus")
)
