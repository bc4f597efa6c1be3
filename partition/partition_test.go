package partition_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ecgen/bipart"
	"github.com/katalvlaran/ecgen/partition"
)

// stirlingTable returns S(i,j) for 0 ≤ j ≤ i ≤ n by the textbook recurrence.
func stirlingTable(n int) [][]int {
	s := make([][]int, n+1)
	for i := range s {
		s[i] = make([]int, n+1)
	}
	s[0][0] = 1
	for i := 1; i <= n; i++ {
		for j := 1; j <= i; j++ {
			s[i][j] = s[i-1][j-1] + j*s[i-1][j]
		}
	}
	return s
}

// checkRGS asserts rgs is a restricted-growth string with exactly k blocks.
func checkRGS(t *testing.T, rgs []int, k int) {
	t.Helper()
	next := 0
	for _, b := range rgs {
		require.LessOrEqual(t, b, next, "block label %d appears before %d in %v", b, next, rgs)
		if b == next {
			next++
		}
	}
	require.Equal(t, k, next, "block count of %v", rgs)
}

func TestMoves_FiveTwo(t *testing.T) {
	want := []partition.Move{
		{Element: 4, Block: 1}, {Element: 2, Block: 1}, {Element: 3, Block: 1}, {Element: 2, Block: 0}, {Element: 4, Block: 0}, {Element: 2, Block: 1}, {Element: 3, Block: 0},
		{Element: 5, Block: 0}, {Element: 3, Block: 1}, {Element: 2, Block: 0}, {Element: 4, Block: 1}, {Element: 2, Block: 1}, {Element: 3, Block: 0}, {Element: 2, Block: 0},
	}
	assert.Equal(t, want, slices.Collect(partition.Moves(5, 2)))
}

func TestMoves_FourTwo(t *testing.T) {
	want := []partition.Move{{Element: 3, Block: 1}, {Element: 2, Block: 1}, {Element: 3, Block: 0}, {Element: 4, Block: 0}, {Element: 3, Block: 1}, {Element: 2, Block: 0}}
	assert.Equal(t, want, slices.Collect(partition.Moves(4, 2)))
}

func TestMoves_Degenerate(t *testing.T) {
	for n := -1; n <= 7; n++ {
		for _, k := range []int{-1, 0, 1, n, n + 1, n + 5} {
			assert.Empty(t, slices.Collect(partition.Moves(n, k)), "n=%d k=%d", n, k)
		}
	}
}

func TestRGS_FiveTwoDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for rgs := range partition.RGS(5, 2) {
		seen[fmt.Sprint(rgs)] = true
	}
	assert.Len(t, seen, 15)
}

func TestRGS_CoversEveryPartition(t *testing.T) {
	const maxN = 9
	s := stirlingTable(maxN)
	for n := 3; n <= maxN; n++ {
		for k := 2; k < n; k++ {
			t.Run(fmt.Sprintf("n=%d,k=%d", n, k), func(t *testing.T) {
				seen := make(map[string]bool)
				var prev []int
				for rgs := range partition.RGS(n, k) {
					checkRGS(t, rgs, k)
					key := fmt.Sprint(rgs)
					require.False(t, seen[key], "repeated %s", key)
					seen[key] = true
					if prev != nil {
						d := 0
						for i := range rgs {
							if rgs[i] != prev[i] {
								d++
							}
						}
						require.Equal(t, 1, d, "%v → %v", prev, rgs)
					}
					prev = slices.Clone(rgs)
				}
				assert.Len(t, seen, s[n][k])
			})
		}
	}
}

func TestMoves_CountMatchesStirling(t *testing.T) {
	s := stirlingTable(11)
	for _, c := range []struct{ n, k int }{{7, 3}, {6, 3}, {7, 4}, {6, 4}, {10, 5}, {11, 6}, {11, 2}} {
		got := 0
		for m := range partition.Moves(c.n, c.k) {
			require.GreaterOrEqual(t, m.Element, 2)
			require.LessOrEqual(t, m.Element, c.n)
			require.GreaterOrEqual(t, m.Block, 0)
			require.Less(t, m.Block, c.k)
			got++
		}
		assert.Equal(t, s[c.n][c.k]-1, got, "n=%d k=%d", c.n, c.k)
	}
}

func TestMoves_TwoBlocksAgreeWithBipart(t *testing.T) {
	for n := 3; n <= 10; n++ {
		var elems []int
		for m := range partition.Moves(n, 2) {
			elems = append(elems, m.Element)
		}
		assert.Equal(t, slices.Collect(bipart.Moves(n)), elems, "n=%d", n)
	}
}

func TestStart(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0, 0, 1}, partition.Start(5, 2))
	assert.Equal(t, []int{0, 0, 1, 2}, partition.Start(4, 3))
	assert.Equal(t, []int{0, 1, 2}, partition.Start(3, 3))
	assert.Equal(t, []int{0, 1, 2}, partition.Start(3, 9))
	assert.Equal(t, []int{0, 0, 0}, partition.Start(3, 0))
	assert.Equal(t, []int{}, partition.Start(0, 2))
}

func TestRGS_DegenerateYieldsStartOnly(t *testing.T) {
	var got [][]int
	for rgs := range partition.RGS(4, 4) {
		got = append(got, slices.Clone(rgs))
	}
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, got)
}

func TestMoves_Deterministic(t *testing.T) {
	seq := partition.Moves(8, 4)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "move 4 to block 1", partition.Move{Element: 4, Block: 1}.String())
}
