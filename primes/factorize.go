// SPDX-License-Identifier: MIT

package primes

import (
	"fmt"

	"github.com/katalvlaran/axiomic"
)

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. When n is itself prime the list is empty; callers tell
// "already prime" apart via FactorList.AlreadyPrime.
//
// Algorithm: trial division by ascending candidates from 2, dividing each
// out fully before advancing; stop once candidate² > remaining and append
// any remaining value > 1 as the last factor.
//
// Errors:
//   - axiomic.ErrInvalidInput if n < 2.
//   - axiomic.ErrBoundExceeded if n > MaxFactorInput.
//
// Complexity: O(√n) time, O(log n) space.
func Factorize(n int64, opts ...Option) (FactorList, error) {
	o := gatherOptions(opts...)
	if n < 2 {
		return nil, fmt.Errorf("primes: Factorize(n=%d): n must be >= 2: %w", n, axiomic.ErrInvalidInput)
	}
	if n > o.maxFactorInput {
		return nil, fmt.Errorf("primes: Factorize(n=%d, max=%d): %w", n, o.maxFactorInput, axiomic.ErrBoundExceeded)
	}

	factors := FactorList{}
	rem := n
	for c := int64(2); c <= rem/c; c++ {
		for rem%c == 0 {
			factors = append(factors, c)
			rem /= c
		}
	}
	if rem > 1 {
		factors = append(factors, rem)
	}

	// a single factor equal to n means n was prime
	if len(factors) == 1 {
		return FactorList{}, nil
	}

	return factors, nil
}
