// Package count provides the counting numbers that size the sequences of
// the generator packages: binomial coefficients, Stirling numbers of the
// second kind, factorials, powers of two and Fibonacci numbers.
//
// ✨ Conventions:
//
//   - Degenerate arguments count the single trivial object, so that for
//     every generator the number of emitted edits plus one equals the
//     matching count:
//     Binomial(n, k) = 1 when k ≤ 0 or k ≥ n,
//     Stirling2(n, k) = 1 when k ≤ 1 or k ≥ n,
//     Stirling2Two(n) = 1 when n < 3.
//   - Results are uint64. A value that does not fit reports ErrOverflow,
//     wrapped with the offending arguments; test with errors.Is.
//   - Fib is the one function with a hard precondition: it panics on a
//     position outside [1, 93].
//
// Memoization:
//
//	Binomial and Stirling2 are computed iteratively and stop at the first
//	intermediate value that overflows, so arbitrarily large n answers
//	ErrOverflow in bounded time and memory. A Cache remembers the results
//	explicitly; it is safe for concurrent use, and callers decide its
//	lifetime. There is no package-level state.
//
//	  c := count.NewCache()
//	  total, err := c.Stirling2(10, 4) // 34105
package count
