// Package ehr generates all permutations of n items with the
// Ehrlich–Hopcroft–Reingold star-transposition algorithm.
//
// What:
//
//   - Every step swaps position 0 with some position k ≥ 1 ("star"
//     transposition). Swaps(n) reports only k.
//   - Starting from the identity, the n!−1 swaps visit each of the n!
//     orderings exactly once; the last ordering is not the identity.
//
// How:
//
//	A mixed-radix counter c[1..n] picks the position to exchange: scan k
//	upward while c[k] == k (resetting those digits), bump c[k], and emit
//	b[k]. The shadow array b[1..k) is then reversed so that b keeps
//	naming the right slot for the next exchange. b is private to the
//	generator; callers never have to mirror their permutation into it.
//
// Functions:
//
//   - Swaps(n)         n!−1 indices k ∈ [1, n); empty for n < 2
//   - Permutations(n)  the n! orderings of 0..n−1 produced by replaying Swaps
//
// Complexity:
//
//   - Time:   O(1) amortized per swap plus the O(k) reversal
//   - Memory: O(n)
package ehr
