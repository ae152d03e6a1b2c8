// SPDX-License-Identifier: MIT
// Package: axiomic
//
// errors.go: the error taxonomy shared by every engine package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Engine packages wrap with context: fmt.Errorf("primes: X(n=%d): %w", n, ErrX).
//   • Messages carry no user-facing prose; render.Error owns wording.
//   • BoundExceeded is an expected, recoverable outcome and must stay
//     distinguishable from InvalidInput.

package axiomic

import "errors"

var (
	// ErrInvalidInput indicates an argument violates a documented precondition
	// (factorizing n < 2, Goldbach on an odd number, NthPrime with k < 1, ...).
	ErrInvalidInput = errors.New("axiomic: invalid input")

	// ErrDivisionByZero indicates a zero divisor or modulus.
	ErrDivisionByZero = errors.New("axiomic: division by zero")

	// ErrBoundExceeded indicates that a requested range exceeds a configured
	// safety bound, or that a result does not fit the int64 value space.
	ErrBoundExceeded = errors.New("axiomic: bound exceeded")

	// ErrInsufficientData indicates a derived computation has too few elements.
	ErrInsufficientData = errors.New("axiomic: insufficient data")

	// ErrNotFound indicates an exhaustive bounded search completed without a match.
	ErrNotFound = errors.New("axiomic: not found")
)
