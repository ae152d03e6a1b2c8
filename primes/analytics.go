// SPDX-License-Identifier: MIT
// Package: axiomic/primes
//
// analytics.go: derived views over PrimesUpTo: gaps, twins, distribution.
// Bound errors from PrimesUpTo propagate unchanged (still errors.Is-able).

package primes

import (
	"fmt"

	"github.com/katalvlaran/axiomic"
)

// twinDistance is the gap that defines a twin-prime pair.
const twinDistance = 2

// PrimeGaps returns primes[i+1] - primes[i] for the primes up to n.
//
// Errors:
//   - axiomic.ErrBoundExceeded from PrimesUpTo.
//   - axiomic.ErrInsufficientData if fewer than two primes are in range.
func PrimeGaps(n int64, opts ...Option) ([]int64, error) {
	ps, err := PrimesUpTo(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("primes: PrimeGaps: %w", err)
	}
	if len(ps) < 2 {
		return nil, fmt.Errorf("primes: PrimeGaps(n=%d): %d prime(s) in range: %w", n, len(ps), axiomic.ErrInsufficientData)
	}

	gaps := make([]int64, len(ps)-1)
	for i := 0; i+1 < len(ps); i++ {
		gaps[i] = ps[i+1] - ps[i]
	}

	return gaps, nil
}

// TwinPrimes returns every adjacent prime pair (p, p+2) with p+2 <= n.
// No pairs is an empty slice, not an error.
func TwinPrimes(n int64, opts ...Option) ([]TwinPair, error) {
	ps, err := PrimesUpTo(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("primes: TwinPrimes: %w", err)
	}

	out := []TwinPair{}
	for i := 0; i+1 < len(ps); i++ {
		if ps[i+1]-ps[i] == twinDistance {
			out = append(out, TwinPair{P: ps[i], Q: ps[i+1]})
		}
	}

	return out, nil
}

// Distribution counts primes per half-open bucket [lo, lo+width) covering
// [0, n]. The last bucket is clipped to end at n+1.
//
// Errors:
//   - axiomic.ErrInvalidInput if width < 1 or n < 0.
//   - axiomic.ErrBoundExceeded from PrimesUpTo.
func Distribution(n, width int64, opts ...Option) ([]Bucket, error) {
	if width < 1 {
		return nil, fmt.Errorf("primes: Distribution(width=%d): width must be >= 1: %w", width, axiomic.ErrInvalidInput)
	}
	if n < 0 {
		return nil, fmt.Errorf("primes: Distribution(n=%d): n must be >= 0: %w", n, axiomic.ErrInvalidInput)
	}
	ps, err := PrimesUpTo(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("primes: Distribution: %w", err)
	}

	count := int(n/width) + 1
	buckets := make([]Bucket, count)
	for i := range buckets {
		lo := int64(i) * width
		hi := lo + width
		if hi > n+1 {
			hi = n + 1
		}
		buckets[i] = Bucket{Lo: lo, Hi: hi}
	}
	for _, p := range ps {
		buckets[p/width].Count++
	}

	return buckets, nil
}
