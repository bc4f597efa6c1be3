package count_test

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecgen/count"
)

func TestBinomial(t *testing.T) {
	c := count.NewCache()
	cases := []struct {
		n, k int
		want uint64
	}{
		{10, 3, 120},
		{6, 3, 20},
		{6, 4, 15},
		{6, 2, 15},
		{6, 6, 1},
		{6, 0, 1},
		{6, 9, 1},
		{6, -1, 1},
		{0, 0, 1},
		{52, 5, 2598960},
		{67, 33, 14226520737620288370},
	}
	for _, tc := range cases {
		got, err := c.Binomial(tc.n, tc.k)
		require.NoError(t, err, "C(%d,%d)", tc.n, tc.k)
		assert.Equal(t, tc.want, got, "C(%d,%d)", tc.n, tc.k)
	}
}

func TestBinomial_Overflow(t *testing.T) {
	c := count.NewCache()
	_, err := c.Binomial(68, 34)
	require.Error(t, err)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	assert.Contains(t, err.Error(), "binomial(68, 34)")

	// The table stays usable after an overflow.
	v, err := c.Binomial(68, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2278), v)
}

func TestStirling2(t *testing.T) {
	c := count.NewCache()
	cases := []struct {
		n, k int
		want uint64
	}{
		{5, 2, 15},
		{7, 3, 301},
		{10, 4, 34105},
		{6, 3, 90},
		{9, 5, 6951},
		{4, 4, 1},
		{4, 1, 1},
		{4, 0, 1},
		{3, 7, 1},
	}
	for _, tc := range cases {
		got, err := c.Stirling2(tc.n, tc.k)
		require.NoError(t, err, "S(%d,%d)", tc.n, tc.k)
		assert.Equal(t, tc.want, got, "S(%d,%d)", tc.n, tc.k)
	}
}

func TestStirling2_Overflow(t *testing.T) {
	c := count.NewCache()
	_, err := c.Stirling2(25, 10)
	require.NoError(t, err)
	_, err = c.Stirling2(27, 10)
	assert.True(t, errors.Is(err, count.ErrOverflow))
}

func TestStirling2Two(t *testing.T) {
	c := count.NewCache()
	for n := 0; n <= 40; n++ {
		got, err := count.Stirling2Two(n)
		require.NoError(t, err)
		want, err := c.Stirling2(n, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}

	v, err := count.Stirling2Two(65)
	require.NoError(t, err)
	assert.Equal(t, ^uint64(0), v)
	_, err = count.Stirling2Two(66)
	assert.True(t, errors.Is(err, count.ErrOverflow))
}

func TestFactorial(t *testing.T) {
	v, err := count.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	v, err = count.Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), v)

	v, err = count.Factorial(20)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), v)

	_, err = count.Factorial(21)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	_, err = count.Factorial(-1)
	assert.True(t, errors.Is(err, count.ErrNegative))
}

func TestPowerOfTwo(t *testing.T) {
	v, err := count.PowerOfTwo(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	v, err = count.PowerOfTwo(63)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, v)

	_, err = count.PowerOfTwo(64)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	_, err = count.PowerOfTwo(-3)
	assert.True(t, errors.Is(err, count.ErrNegative))
}

func TestFib(t *testing.T) {
	assert.Equal(t, uint64(1), count.Fib(1))
	assert.Equal(t, uint64(1), count.Fib(2))
	assert.Equal(t, uint64(6765), count.Fib(20))
	assert.Equal(t, uint64(12200160415121876738), count.Fib(93))

	assert.Panics(t, func() { count.Fib(0) })
	assert.Panics(t, func() { count.Fib(-4) })
	assert.Panics(t, func() { count.Fib(94) })
}

// TestCache_Concurrent hammers one cache from many goroutines; run with
// -race to check the locking.
func TestCache_Concurrent(t *testing.T) {
	c := count.NewCache()
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			n := 20 + id%10
			b, err := c.Binomial(n, n/2)
			assert.NoError(t, err)
			assert.NotZero(t, b)
			s, err := c.Stirling2(n-8, 3+id%5)
			assert.NoError(t, err)
			assert.NotZero(t, s)
		}(w)
	}
	wg.Wait()

	v, err := c.Binomial(20, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(184756), v)
}

// TestTables_MatchRecurrence compares against Pascal's triangle and the
// Stirling recurrence, over every (n, k) whose value fits in a uint64.
func TestTables_MatchRecurrence(t *testing.T) {
	c := count.NewCache()

	pascal := [][]uint64{{1}}
	for n := 1; n <= 67; n++ {
		row := make([]uint64, n+1)
		row[0], row[n] = 1, 1
		for k := 1; k < n; k++ {
			row[k] = pascal[n-1][k-1] + pascal[n-1][k]
		}
		pascal = append(pascal, row)
		for k := 1; k < n; k++ {
			got, err := c.Binomial(n, k)
			require.NoError(t, err, "C(%d,%d)", n, k)
			require.Equal(t, row[k], got, "C(%d,%d)", n, k)
		}
	}

	stirling := [][]uint64{{1}}
	for n := 1; n <= 26; n++ {
		row := make([]uint64, n+1)
		for k := 1; k <= n; k++ {
			row[k] = stirling[n-1][k-1]
			if k < n {
				row[k] += uint64(k) * stirling[n-1][k]
			}
		}
		stirling = append(stirling, row)
		for k := 2; k < n; k++ {
			got, err := c.Stirling2(n, k)
			require.NoError(t, err, "S(%d,%d)", n, k)
			require.Equal(t, row[k], got, "S(%d,%d)", n, k)
		}
	}
}

// TestLargeArguments checks that huge sizes answer quickly, either with
// the exact value or with ErrOverflow.
func TestLargeArguments(t *testing.T) {
	c := count.NewCache()

	_, err := c.Stirling2(10_000_000, 2)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	_, err = c.Stirling2(30_000_000, 2)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	_, err = c.Stirling2(30_000_000, 29_999_998)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	_, err = c.Stirling2(1_000_000_000, 500_000_000)
	assert.True(t, errors.Is(err, count.ErrOverflow))
	_, err = c.Stirling2(1_000_000_000, 13)
	assert.True(t, errors.Is(err, count.ErrOverflow))

	v, err := c.Stirling2(30_000_000, 29_999_999)
	require.NoError(t, err)
	assert.Equal(t, uint64(449999985000000), v)

	v, err = c.Binomial(30_000_000, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(449999985000000), v)

	v, err = c.Binomial(30_000_000, 29_999_998)
	require.NoError(t, err)
	assert.Equal(t, uint64(449999985000000), v)

	_, err = c.Binomial(1_000_000_000, 500_000_000)
	assert.True(t, errors.Is(err, count.ErrOverflow))
}
