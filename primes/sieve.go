// SPDX-License-Identifier: MIT

package primes

import (
	"fmt"

	"github.com/katalvlaran/axiomic"
)

// PrimesUpTo returns every prime p with 2 <= p <= n in ascending order.
// The result is empty (not nil) for n < 2.
//
// Implementation: sieve of Eratosthenes over [0, n]; the output is identical
// to filtering 2..n through IsPrime.
//
// Errors:
//   - axiomic.ErrBoundExceeded if n > MaxPrimeRange.
//
// Complexity: O(n log log n) time, O(n) memory.
func PrimesUpTo(n int64, opts ...Option) ([]int64, error) {
	o := gatherOptions(opts...)
	if n > o.maxPrimeRange {
		return nil, fmt.Errorf("primes: PrimesUpTo(n=%d, max=%d): %w", n, o.maxPrimeRange, axiomic.ErrBoundExceeded)
	}
	if n < 2 {
		return []int64{}, nil
	}

	composite := make([]bool, n+1)
	out := make([]int64, 0, estimateCount(n))
	for i := int64(2); i <= n; i++ {
		if composite[i] {
			continue
		}
		out = append(out, i)
		if i > n/i {
			continue // i*i > n: nothing left to mark
		}
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	return out, nil
}

// estimateCount is a cheap capacity hint (≈ n / ln n, rounded up generously).
func estimateCount(n int64) int {
	switch {
	case n < 100:
		return 25
	case n < 10_000:
		return int(n/5) + 1
	default:
		return int(n/8) + 1
	}
}
