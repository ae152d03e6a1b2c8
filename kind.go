// SPDX-License-Identifier: MIT

package axiomic

import "errors"

// Kind classifies an engine error without looking at its text.
type Kind int

const (
	// KindNone is the classification of a nil error.
	KindNone Kind = iota
	KindInvalidInput
	KindDivisionByZero
	KindBoundExceeded
	KindInsufficientData
	KindNotFound
	// KindUnknown covers errors that do not wrap any taxonomy sentinel.
	KindUnknown
)

var kindNames = [...]string{
	KindNone:             "none",
	KindInvalidInput:     "invalid_input",
	KindDivisionByZero:   "division_by_zero",
	KindBoundExceeded:    "bound_exceeded",
	KindInsufficientData: "insufficient_data",
	KindNotFound:         "not_found",
	KindUnknown:          "unknown",
}

// String returns the stable snake_case name used in logs and JSON exports.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}

	return kindNames[k]
}

// KindOf maps err onto the taxonomy via errors.Is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrBoundExceeded):
		return KindBoundExceeded
	case errors.Is(err, ErrInsufficientData):
		return KindInsufficientData
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}
