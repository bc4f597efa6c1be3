// Package ecgen enumerates combinatorial objects in minimal-change order:
// every object differs from the previous one by a single flip, swap or
// move, and the generators yield only that edit.
//
// 🚀 What is ecgen?
//
//	A set of lazy, restartable generators built on Go 1.23 iterators:
//		• Binary strings: reflected Gray code (bit flips)
//		• Permutations: star transpositions (Ehrlich) and adjacent swaps
//		  (Steinhaus–Johnson–Trotter, cyclic or plain changes)
//		• Set partitions: two blocks, or exactly k blocks (Ruskey)
//		• k-subsets: homogeneous revolving door (Eades–McKay)
//		• Counting: binomials, Stirling numbers, factorials
//
// ✨ Why edits?
//
//   - The caller owns the object and applies each edit in O(1).
//   - Memory stays proportional to n, never to the sequence length.
//   - Sequences are plain iter.Seq values: range, break, restart.
//
// Packages:
//
//	coro/      suspend/resume driver that runs recursive generators on an explicit stack
//	graycode/  bit flips of the binary reflected Gray code
//	ehr/       swaps with position 0 (star transpositions)
//	sjt/       adjacent swaps, cyclic or plain
//	bipart/    element moves through the bipartitions of {1..n}
//	partition/ element moves through the k-block partitions of {1..n}
//	combin/    position swaps through the k-subsets of n items
//	count/     sequence sizes, with an explicit memo Cache
//
// Quick example:
//
//	word := []byte("abc")
//	for i := range sjt.Swaps(3, sjt.ModeCyclic) {
//		word[i], word[i+1] = word[i+1], word[i]
//		fmt.Print(string(word), " ")
//	}
//	// acb cab cba bca bac abc
//
// The ecgen command in cmd/ecgen prints any of the sequences as text,
// JSON or YAML.
package ecgen
