// SPDX-License-Identifier: MIT
// Package: axiomic/primes
//
// options.go: functional options for bounded searches.
//
// Contract:
//   • Option constructors panic on negative bounds (programmer error).
//   • Algorithms never panic; they return wrapped axiomic sentinels.
//   • Later options override earlier ones.

package primes

// Defaults (single source of truth).
const (
	// DefaultMaxPrimeRange caps n for PrimesUpTo and everything built on it.
	DefaultMaxPrimeRange int64 = 10_000

	// DefaultMaxNextPrimeStart caps the starting value of NextPrime.
	DefaultMaxNextPrimeStart int64 = 100_000

	// DefaultMaxNthPrime caps k for NthPrime (the 10 000th prime is 104 729).
	DefaultMaxNthPrime = 10_000

	// DefaultMaxFactorInput caps n for Factorize; trial division stays below 2^20 steps.
	DefaultMaxFactorInput int64 = 1 << 40

	// DefaultMaxGoldbach caps evenN for GoldbachPair; each candidate check
	// is a trial division below 2^20 steps.
	DefaultMaxGoldbach int64 = 1 << 40
)

// Option mutates Options before an operation runs.
type Option func(*Options)

// Options holds the effective bounds after applying Option setters.
type Options struct {
	maxPrimeRange     int64
	maxNextPrimeStart int64
	maxNthPrime       int
	maxFactorInput    int64
	maxGoldbach       int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		maxPrimeRange:     DefaultMaxPrimeRange,
		maxNextPrimeStart: DefaultMaxNextPrimeStart,
		maxNthPrime:       DefaultMaxNthPrime,
		maxFactorInput:    DefaultMaxFactorInput,
		maxGoldbach:       DefaultMaxGoldbach,
	}
}

// MaxPrimeRange reports the effective PrimesUpTo bound.
func (o Options) MaxPrimeRange() int64 { return o.maxPrimeRange }

// MaxNextPrimeStart reports the effective NextPrime bound.
func (o Options) MaxNextPrimeStart() int64 { return o.maxNextPrimeStart }

// MaxNthPrime reports the effective NthPrime bound.
func (o Options) MaxNthPrime() int { return o.maxNthPrime }

// MaxFactorInput reports the effective Factorize bound.
func (o Options) MaxFactorInput() int64 { return o.maxFactorInput }

// MaxGoldbach reports the effective GoldbachPair bound.
func (o Options) MaxGoldbach() int64 { return o.maxGoldbach }

// WithMaxPrimeRange sets MAX_PRIME_RANGE. Panics if n < 0.
func WithMaxPrimeRange(n int64) Option {
	if n < 0 {
		panic("primes: WithMaxPrimeRange(n<0)")
	}

	return func(o *Options) { o.maxPrimeRange = n }
}

// WithMaxNextPrimeStart sets MAX_NEXT_PRIME_START. Panics if n < 0.
func WithMaxNextPrimeStart(n int64) Option {
	if n < 0 {
		panic("primes: WithMaxNextPrimeStart(n<0)")
	}

	return func(o *Options) { o.maxNextPrimeStart = n }
}

// WithMaxNthPrime sets the largest k accepted by NthPrime. Panics if k < 0.
func WithMaxNthPrime(k int) Option {
	if k < 0 {
		panic("primes: WithMaxNthPrime(k<0)")
	}

	return func(o *Options) { o.maxNthPrime = k }
}

// WithMaxFactorInput sets the largest n accepted by Factorize. Panics if n < 0.
func WithMaxFactorInput(n int64) Option {
	if n < 0 {
		panic("primes: WithMaxFactorInput(n<0)")
	}

	return func(o *Options) { o.maxFactorInput = n }
}

// WithMaxGoldbach sets the largest evenN accepted by GoldbachPair. Panics if n < 0.
func WithMaxGoldbach(n int64) Option {
	if n < 0 {
		panic("primes: WithMaxGoldbach(n<0)")
	}

	return func(o *Options) { o.maxGoldbach = n }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
