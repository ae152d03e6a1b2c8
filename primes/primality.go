// SPDX-License-Identifier: MIT
// Package: axiomic/primes
//
// primality.go: IsPrime, NextPrime and NthPrime.
//
// Contract:
//   - IsPrime is total: false for n < 2, deterministic trial division otherwise.
//   - NextPrime / NthPrime validate their configured bound first, then run a
//     linear ascent capped by a proven ceiling (never an open-ended loop).

package primes

import (
	"fmt"
	"math"

	"github.com/katalvlaran/axiomic"
)

// smallNthCeiling bounds the first five primes (2, 3, 5, 7, 11) where
// Rosser's inequality does not apply.
const smallNthCeiling int64 = 11

// IsPrime reports whether n is prime. Returns false for any n < 2; otherwise
// true iff no d in [2, ⌊√n⌋] divides n.
//
// The loop guard d <= n/d is the overflow-free form of d*d <= n.
// Complexity: O(√n) time, O(1) space.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true // 2, 3
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest prime strictly greater than n, found by
// linear ascent n+1, n+2, ...
//
// Errors:
//   - axiomic.ErrBoundExceeded if n > MaxNextPrimeStart.
//   - axiomic.ErrNotFound if the ascent passes 2n (unreachable by Bertrand's
//     postulate; kept so the loop is provably finite).
func NextPrime(n int64, opts ...Option) (int64, error) {
	o := gatherOptions(opts...)
	if n > o.maxNextPrimeStart {
		return 0, fmt.Errorf("primes: NextPrime(n=%d, max=%d): %w", n, o.maxNextPrimeStart, axiomic.ErrBoundExceeded)
	}
	if n < 2 {
		return 2, nil
	}

	limit := int64(math.MaxInt64)
	if n <= math.MaxInt64/2 {
		limit = 2 * n
	}
	// c > n stops the walk if c+1 wraps around at MaxInt64.
	for c := n + 1; c > n && c <= limit; c++ {
		if IsPrime(c) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("primes: NextPrime(n=%d): no prime up to %d: %w", n, limit, axiomic.ErrNotFound)
}

// NthPrime returns the k-th prime in ascending order (NthPrime(1) == 2).
//
// Errors:
//   - axiomic.ErrInvalidInput if k < 1.
//   - axiomic.ErrBoundExceeded if k > MaxNthPrime.
//   - axiomic.ErrNotFound if the ascent passes the Rosser ceiling
//     k(ln k + ln ln k) (unreachable; keeps the loop finite).
func NthPrime(k int, opts ...Option) (int64, error) {
	o := gatherOptions(opts...)
	if k < 1 {
		return 0, fmt.Errorf("primes: NthPrime(k=%d): k must be >= 1: %w", k, axiomic.ErrInvalidInput)
	}
	if k > o.maxNthPrime {
		return 0, fmt.Errorf("primes: NthPrime(k=%d, max=%d): %w", k, o.maxNthPrime, axiomic.ErrBoundExceeded)
	}

	ceiling := nthCeiling(k)
	count := 0
	for c := int64(2); c <= ceiling; c++ {
		if IsPrime(c) {
			count++
			if count == k {
				return c, nil
			}
		}
	}

	return 0, fmt.Errorf("primes: NthPrime(k=%d): passed ceiling %d: %w", k, ceiling, axiomic.ErrNotFound)
}

// nthCeiling returns an upper bound for the k-th prime (Rosser, k >= 6).
func nthCeiling(k int) int64 {
	if k < 6 {
		return smallNthCeiling
	}
	kf := float64(k)

	return int64(math.Ceil(kf * (math.Log(kf) + math.Log(math.Log(kf)))))
}
