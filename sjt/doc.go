// Package sjt generates all permutations of n items by adjacent
// transpositions, in Steinhaus–Johnson–Trotter ("plain changes") order.
//
// What:
//
//   - Every step swaps positions i and i+1; the sequences report i.
//   - The largest item sweeps right-to-left and left-to-right through all
//     n positions; between sweeps the permutation of the remaining n−1
//     items advances by one step of its own plain-changes order.
//
// Modes:
//
//   - ModeCyclic (Cyclic)       n! swaps; after the last one the
//     permutation is the identity again, closing the loop.
//   - ModePlain  (PlainChanges) n!−1 swaps; ends on the last new
//     permutation.
//
// Key Types & Functions:
//
//   - Mode                    selects cyclic or plain output
//   - Cyclic(n), PlainChanges(n), Swaps(n, mode)
//   - Permutations(n, mode)   replayed orderings of 0..n−1
//
// Degenerate sizes: Cyclic(2) is [0, 0]; Cyclic(n) for n < 2 and
// PlainChanges(n) for n < 2 yield nothing.
//
// Complexity:
//
//   - Time:   O(1) amortized per swap
//   - Memory: O(n) nested iterators, one per level
package sjt
