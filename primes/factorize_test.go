package primes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/primes"
)

// TestFactorize_Scenarios covers fixed examples, including the canonical 28.
func TestFactorize_Scenarios(t *testing.T) {
	cases := []struct {
		n    int64
		want primes.FactorList
	}{
		{28, primes.FactorList{2, 2, 7}},
		{4, primes.FactorList{2, 2}},
		{360, primes.FactorList{2, 2, 2, 3, 3, 5}},
		{1001, primes.FactorList{7, 11, 13}},
		{9797, primes.FactorList{97, 101}},
		{1 << 20, func() primes.FactorList {
			f := make(primes.FactorList, 20)
			for i := range f {
				f[i] = 2
			}
			return f
		}()},
	}
	for _, tc := range cases {
		got, err := primes.Factorize(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
		assert.False(t, got.AlreadyPrime())
	}
}

// TestFactorize_Prime checks primes yield an empty list, never [p].
func TestFactorize_Prime(t *testing.T) {
	for _, p := range []int64{2, 3, 17, 97, 104729} {
		got, err := primes.Factorize(p)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got, "p=%d", p)
		assert.True(t, got.AlreadyPrime())
	}
}

// TestFactorize_Errors covers InvalidInput and the configured bound.
func TestFactorize_Errors(t *testing.T) {
	for _, n := range []int64{1, 0, -12} {
		_, err := primes.Factorize(n)
		assert.ErrorIs(t, err, axiomic.ErrInvalidInput, "n=%d", n)
	}

	_, err := primes.Factorize(primes.DefaultMaxFactorInput + 1)
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)

	_, err = primes.Factorize(1000, primes.WithMaxFactorInput(999))
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)
}

// TestFactorize_Properties checks product == n and all-prime factors over a range.
func TestFactorize_Properties(t *testing.T) {
	for n := int64(2); n <= 5000; n++ {
		f, err := primes.Factorize(n)
		require.NoError(t, err)
		if f.AlreadyPrime() {
			require.True(t, primes.IsPrime(n), "n=%d flagged prime", n)
			continue
		}
		assert.Equal(t, n, f.Product(), "n=%d", n)
		for i, p := range f {
			assert.True(t, primes.IsPrime(p), "n=%d factor %d", n, p)
			if i > 0 {
				assert.LessOrEqual(t, f[i-1], p, "n=%d not ascending", n)
			}
		}
	}
}

// TestFactorList_Powers groups repeated primes.
func TestFactorList_Powers(t *testing.T) {
	f := primes.FactorList{2, 2, 2, 3, 5, 5}
	assert.Equal(t, []primes.PrimePower{{Prime: 2, Exp: 3}, {Prime: 3, Exp: 1}, {Prime: 5, Exp: 2}}, f.Powers())
	assert.Empty(t, primes.FactorList{}.Powers())
	assert.Equal(t, int64(1), primes.FactorList{}.Product())
}
