package primes_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/axiomic"
	"github.com/katalvlaran/axiomic/primes"
)

// TestPrimeGaps covers the basic differences and InsufficientData.
func TestPrimeGaps(t *testing.T) {
	got, err := primes.PrimeGaps(20)
	require.NoError(t, err)
	if diff := cmp.Diff([]int64{1, 2, 2, 4, 2, 4, 2}, got); diff != "" {
		t.Errorf("PrimeGaps(20) mismatch (-want +got):\n%s", diff)
	}

	got, err = primes.PrimeGaps(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got)

	for _, n := range []int64{2, 1, -4} {
		_, err = primes.PrimeGaps(n)
		assert.ErrorIs(t, err, axiomic.ErrInsufficientData, "n=%d", n)
	}

	_, err = primes.PrimeGaps(50000)
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)
}

// TestTwinPrimes covers the first pairs, the empty case and pair invariants.
func TestTwinPrimes(t *testing.T) {
	got, err := primes.TwinPrimes(20)
	require.NoError(t, err)
	want := []primes.TwinPair{{3, 5}, {5, 7}, {11, 13}, {17, 19}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TwinPrimes(20) mismatch (-want +got):\n%s", diff)
	}

	got, err = primes.TwinPrimes(4)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	all, err := primes.TwinPrimes(primes.DefaultMaxPrimeRange)
	require.NoError(t, err)
	for _, tp := range all {
		assert.Equal(t, tp.P+2, tp.Q)
		assert.True(t, primes.IsPrime(tp.P) && primes.IsPrime(tp.Q))
		assert.LessOrEqual(t, tp.Q, primes.DefaultMaxPrimeRange)
	}

	_, err = primes.TwinPrimes(10001)
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)
}

// TestDistribution checks bucket counts and clipping of the last bucket.
func TestDistribution(t *testing.T) {
	got, err := primes.Distribution(30, 10)
	require.NoError(t, err)
	want := []primes.Bucket{
		{Lo: 0, Hi: 10, Count: 4},
		{Lo: 10, Hi: 20, Count: 4},
		{Lo: 20, Hi: 30, Count: 2},
		{Lo: 30, Hi: 31, Count: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Distribution(30,10) mismatch (-want +got):\n%s", diff)
	}

	got, err = primes.Distribution(10000, 1000)
	require.NoError(t, err)
	total := 0
	for _, b := range got {
		total += b.Count
	}
	assert.Equal(t, 1229, total)

	_, err = primes.Distribution(100, 0)
	assert.ErrorIs(t, err, axiomic.ErrInvalidInput)
	_, err = primes.Distribution(-1, 10)
	assert.ErrorIs(t, err, axiomic.ErrInvalidInput)
	_, err = primes.Distribution(20000, 100)
	assert.ErrorIs(t, err, axiomic.ErrBoundExceeded)
}
