package count

import (
	"math/bits"
	"sync"

	"github.com/pkg/errors"
)

// stirlingSquare is the smallest m with S(2m, m) ≥ 2⁶⁴. Whenever both k and
// n−k reach it, S(n, k) ≥ S(2m, m) cannot fit.
const stirlingSquare = 14

type key [2]int

// Cache memoizes binomial coefficients and Stirling numbers.
// The zero value is not usable; create one with NewCache.
type Cache struct {
	mu       sync.Mutex
	binom    map[key]uint64
	stirling map[key]uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		binom:    make(map[key]uint64),
		stirling: make(map[key]uint64),
	}
}

// Binomial returns C(n, k), the number of k-subsets of n items.
func (c *Cache) Binomial(n, k int) (uint64, error) {
	if k >= n || k <= 0 {
		return 1, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, hit := c.binom[key{n, k}]; hit {
		return v, nil
	}
	v, ok := binomial(n, k)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "binomial(%d, %d)", n, k)
	}
	c.binom[key{n, k}] = v
	return v, nil
}

// binomial assumes 0 < k < n. Each step holds C(n−k+i, i), which only
// grows, so the first step that does not fit decides the overflow. With
// k ≤ n−k that happens within a few dozen steps.
func binomial(n, k int) (uint64, bool) {
	k = min(k, n-k)
	v := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(v, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		v, _ = bits.Div64(hi, lo, uint64(i))
	}
	return v, true
}

// Stirling2 returns S(n, k), the number of partitions of n items into k
// non-empty blocks.
func (c *Cache) Stirling2(n, k int) (uint64, error) {
	if k >= n || k <= 1 {
		return 1, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, hit := c.stirling[key{n, k}]; hit {
		return v, nil
	}
	v, ok := stirling2(n, k)
	if !ok {
		return 0, errors.Wrapf(ErrOverflow, "stirling2(%d, %d)", n, k)
	}
	c.stirling[key{n, k}] = v
	return v, nil
}

// stirling2 assumes 1 < k < n. It fills T(d, j) = S(j+d, j) with
//
//	T(d, j) = T(d, j−1) + j·T(d−1, j),  T(0, j) = T(d, 1) = 1
//
// up to d = n−k, j = k, keeping one line of the table along the shorter
// side. T grows in both indices, so the first entry that overflows proves
// the answer overflows too.
func stirling2(n, k int) (uint64, bool) {
	d := n - k
	switch {
	case d == 1:
		return binomial(n, 2)
	case k >= stirlingSquare && d >= stirlingSquare:
		return 0, false
	}

	if k <= d {
		// row[j] = T(dd, j); T(·, 2) = 2^(dd+1)−1 overflows by dd = 64
		row := make([]uint64, k+1)
		for j := range row {
			row[j] = 1
		}
		for dd := 1; dd <= d; dd++ {
			for j := 2; j <= k; j++ {
				v, ok := mulAdd(row[j-1], uint64(j), row[j])
				if !ok {
					return 0, false
				}
				row[j] = v
			}
		}
		return row[k], true
	}

	// col[dd] = T(dd, j); with 2 ≤ d < stirlingSquare it overflows
	// once j is past ~10⁵
	col := make([]uint64, d+1)
	for dd := range col {
		col[dd] = 1
	}
	for j := 2; j <= k; j++ {
		for dd := 1; dd <= d; dd++ {
			v, ok := mulAdd(col[dd], uint64(j), col[dd-1])
			if !ok {
				return 0, false
			}
			col[dd] = v
		}
	}
	return col[d], true
}

// mulAdd returns a + m·b, reporting false if it does not fit.
func mulAdd(a, m, b uint64) (uint64, bool) {
	hi, mb := bits.Mul64(m, b)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(a, mb, 0)
	return sum, carry == 0
}
