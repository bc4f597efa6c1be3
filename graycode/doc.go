// Package graycode enumerates binary strings in binary reflected Gray code
// order, reporting only which bit flips between consecutive strings.
//
// 🚀 What is the reflected Gray code?
//
//	An ordering of all 2ⁿ binary strings of length n in which successive
//	strings differ in exactly one bit. It is built by doubling: list the
//	code for n−1, flip bit n−1, then list the code for n−1 again (which,
//	read as flips, is its own mirror image).
//
//	  n=3 flips: 0 1 0 2 0 1 0
//	  strings:   000 100 110 010 011 111 101 001
//
// ✨ Functions:
//
//   - Flips(n)    lazy sequence of 2ⁿ−1 bit indices in [0, n)
//   - Strings(n)  the 2ⁿ bit vectors themselves, starting at all zeros
//
// Degenerate sizes (n ≤ 0) yield no flips; Strings(0) yields one empty
// vector.
//
// Complexity:
//
//   - Time:   O(1) amortized per flip
//   - Memory: O(n) suspended activations
package graycode
