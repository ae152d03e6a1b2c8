// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/axiomic"
)

// Error renders err as one line of prose chosen by its kind.
// A nil error renders as the empty string.
func Error(err error) string {
	switch axiomic.KindOf(err) {
	case axiomic.KindNone:
		return ""
	case axiomic.KindInvalidInput:
		return fmt.Sprintf("Invalid input: %v", err)
	case axiomic.KindDivisionByZero:
		return "Division by zero is undefined."
	case axiomic.KindBoundExceeded:
		return fmt.Sprintf("⚠ Too large to compute here: %v", err)
	case axiomic.KindInsufficientData:
		return fmt.Sprintf("Not enough data: %v", err)
	case axiomic.KindNotFound:
		return fmt.Sprintf("Nothing found: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
