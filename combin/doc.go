// Package combin enumerates the k-element subsets of an n-element set in
// homogeneous revolving-door order (Eades–McKay).
//
// What:
//
//   - A subset is a 0/1 word of length n with k ones.
//   - Swaps(n, k) yields Swap{X, Y}: exchange positions X and Y. Every swap
//     trades a one for a zero, so successive subsets differ by removing one
//     element and adding another.
//   - From Start(n, k) = 1ᵏ0ⁿ⁻ᵏ the C(n,k)−1 swaps visit each subset once.
//   - k ≤ 0 or k ≥ n yields nothing; k = 1 walks the single one rightwards.
//
// How:
//
//	Four mutually recursive procedures split by the parity of k: genEven,
//	genOdd and their reversals negEven, negOdd. Each one recurses into
//	n−1 and n−2, shrinking k by one or two.
//
// Functions:
//
//   - Swaps(n, k), Start(n, k), Subsets(n, k)
package combin
