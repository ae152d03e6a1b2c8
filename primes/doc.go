// Package primes provides primality testing, bounded prime enumeration and
// the prime analytics built on top of it.
//
// What
//
//   - IsPrime     : deterministic trial division up to ⌊√n⌋.
//   - PrimesUpTo  : every prime in [2, n] (sieve of Eratosthenes).
//   - NextPrime   : smallest prime strictly greater than n.
//   - NthPrime    : k-th prime in ascending order (1st prime = 2).
//   - Factorize   : prime factors with multiplicity; empty for primes.
//   - PrimeGaps   : differences between consecutive primes up to n.
//   - TwinPrimes  : adjacent prime pairs (p, p+2) up to n.
//   - GoldbachPair: smallest p with p and n−p both prime, for even n > 2.
//   - Distribution: prime counts per fixed-width bucket up to n.
//
// Bounds
//
//	Every operation that would otherwise search without limit is capped by
//	an explicit option and fails fast with axiomic.ErrBoundExceeded:
//
//	  WithMaxPrimeRange      (default 10 000)   PrimesUpTo and its users
//	  WithMaxNextPrimeStart  (default 100 000)  NextPrime
//	  WithMaxNthPrime        (default 10 000)   NthPrime
//	  WithMaxFactorInput     (default 2^40)     Factorize
//	  WithMaxGoldbach        (default 2^40)     GoldbachPair
//
//	Internal ascents additionally carry a mathematical ceiling (Bertrand's
//	postulate for NextPrime, Rosser's bound for NthPrime); running past it
//	yields axiomic.ErrNotFound instead of looping.
//
// Errors
//
//	All failures wrap the sentinels of package axiomic:
//	ErrInvalidInput, ErrBoundExceeded, ErrInsufficientData, ErrNotFound.
//
// Usage
//
//	ps, err := primes.PrimesUpTo(20)                    // [2 3 5 7 11 13 17 19]
//	f, _ := primes.Factorize(28)                        // [2 2 7]
//	g, _ := primes.GoldbachPair(28)                     // {28 5 23}
//	_, err = primes.PrimesUpTo(20000)                   // ErrBoundExceeded
//	ps, _ = primes.PrimesUpTo(20000, primes.WithMaxPrimeRange(50000))
//
// Complexity
//
//   - IsPrime:    O(√n)
//   - PrimesUpTo: O(n log log n) time, O(n) memory
//   - Factorize:  O(√n)
package primes
