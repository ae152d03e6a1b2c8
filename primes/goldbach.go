// SPDX-License-Identifier: MIT

package primes

import (
	"fmt"

	"github.com/katalvlaran/axiomic"
)

// GoldbachPair finds the decomposition evenN = p + q with p the smallest
// prime for which evenN − p is also prime. The search ascends i = 2 ..
// evenN−1 and therefore always terminates.
//
// Errors:
//   - axiomic.ErrInvalidInput if evenN <= 2 or evenN is odd.
//   - axiomic.ErrBoundExceeded if evenN > MaxGoldbach.
//   - axiomic.ErrNotFound if no pair exists (Goldbach's conjecture is
//     unproven, so the outcome stays representable).
func GoldbachPair(evenN int64, opts ...Option) (Goldbach, error) {
	o := gatherOptions(opts...)
	if evenN <= 2 || evenN%2 != 0 {
		return Goldbach{}, fmt.Errorf("primes: GoldbachPair(n=%d): need an even n > 2: %w", evenN, axiomic.ErrInvalidInput)
	}
	if evenN > o.maxGoldbach {
		return Goldbach{}, fmt.Errorf("primes: GoldbachPair(n=%d, max=%d): %w", evenN, o.maxGoldbach, axiomic.ErrBoundExceeded)
	}

	for i := int64(2); i < evenN; i++ {
		if IsPrime(i) && IsPrime(evenN-i) {
			return Goldbach{N: evenN, P: i, Q: evenN - i}, nil
		}
	}

	return Goldbach{}, fmt.Errorf("primes: GoldbachPair(n=%d): %w", evenN, axiomic.ErrNotFound)
}
