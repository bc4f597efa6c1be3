// Package partition enumerates the partitions of {1..n} into exactly k
// non-empty blocks in minimal-change order: each step relocates a single
// element to another block.
//
// 🚀 Representation
//
//	A partition is a restricted-growth string (RGS) a[1..n] where a[i] is
//	the block of element i and block labels first appear in increasing
//	order. The partitions of {1,2,3,4} into three blocks:
//
//	  0122 0121 0112 0120 0102
//
// ✨ What:
//
//   - Moves(n, k) yields Move{Element, Block}: set a[Element] = Block.
//   - From the canonical start 0ⁿ⁻ᵏ 0 1 … k−1 the S(n,k)−1 moves visit
//     every k-block partition exactly once, and the string stays a valid
//     k-block RGS after every single move.
//   - k ≤ 1 or k ≥ n yields nothing: those partitions are unique.
//
// How:
//
//	Eight mutually recursive procedures (Ruskey's reversed-sublist
//	construction), split by direction and by the parity of k:
//
//	  gen0Even gen0Odd   S(n,k,0)   0ⁿ⁻ᵏ01…(k−1)  →  0ⁿ⁻ᵏ12…(k−1)0
//	  gen1Even gen1Odd   S(n,k,1)   0ⁿ⁻ᵏ01…(k−1)  →  012…(k−1)0ⁿ⁻ᵏ
//	  neg0Even neg0Odd   S(n,k,0) reversed
//	  neg1Even neg1Odd   S(n,k,1) reversed
//
//	Each body recurses into k−1 (opposite parity) while k is large enough,
//	emits the boundary move, then either interleaves recursive passes over
//	n−1 with moves of element n, or (when k = n−1) emits the short tail
//	stepping element n across blocks two at a time.
//
// Functions:
//
//   - Moves(n, k)  the edit stream
//   - Start(n, k)  canonical RGS as a 0-based slice (element e at e−1)
//   - RGS(n, k)    the S(n,k) strings obtained by replaying Moves from Start
//
// Complexity:
//
//   - Time:   O(1) amortized per move
//   - Memory: O(n·k) for the live path of suspended procedures
package partition
