// SPDX-License-Identifier: MIT

package primes

// FactorList is the ascending prime factorization of an integer ≥ 2, with
// multiplicity. An empty list means the input itself is prime; it is never
// reported as [n].
type FactorList []int64

// PrimePower is one prime raised to its multiplicity.
type PrimePower struct {
	Prime int64 `json:"prime"`
	Exp   int   `json:"exp"`
}

// AlreadyPrime reports whether the factorized input was prime.
func (f FactorList) AlreadyPrime() bool { return len(f) == 0 }

// Product multiplies the factors back together (1 for an empty list).
func (f FactorList) Product() int64 {
	p := int64(1)
	for _, x := range f {
		p *= x
	}

	return p
}

// Powers groups equal factors: [2 2 7] → [{2 2} {7 1}].
func (f FactorList) Powers() []PrimePower {
	out := make([]PrimePower, 0, len(f))
	for _, x := range f {
		if n := len(out); n > 0 && out[n-1].Prime == x {
			out[n-1].Exp++
			continue
		}
		out = append(out, PrimePower{Prime: x, Exp: 1})
	}

	return out
}

// TwinPair is a pair of primes (P, P+2).
type TwinPair struct {
	P int64 `json:"p"`
	Q int64 `json:"q"`
}

// Goldbach is a decomposition N = P + Q into two primes, P ≤ Q.
type Goldbach struct {
	N int64 `json:"n"`
	P int64 `json:"p"`
	Q int64 `json:"q"`
}

// Bucket counts the primes in the half-open interval [Lo, Hi).
type Bucket struct {
	Lo    int64 `json:"lo"`
	Hi    int64 `json:"hi"`
	Count int   `json:"count"`
}
