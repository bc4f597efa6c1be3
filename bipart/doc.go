// Package bipart enumerates the partitions of {1..n} into exactly two
// non-empty blocks, moving a single element between the blocks per step.
//
// What:
//
//   - A bipartition is stored as a restricted-growth string (RGS): the
//     block (0 or 1) of each element, element 1 always in block 0.
//   - Moves(n) yields the element to move to the other block. Starting
//     from the canonical string 0…01 (element n alone in block 1) the
//     2ⁿ⁻¹−2 moves visit all S(n,2) = 2ⁿ⁻¹−1 bipartitions once.
//   - No move ever empties a block.
//
// How:
//
//	Three mutually recursive procedures, each shrinking n by one:
//
//	  Down(n)  = n−1, Up(n−1), n, NegUp(n−1)
//	  Up(n)    = 2,   NegUp(n−1), n, Up(n−1)
//	  NegUp(n) = NegUp(n−1), n, Up(n−1), 2
//
//	with n < 3 emitting nothing. NegUp replays Up backwards.
//
// Functions:
//
//   - Moves(n)  element indices in [2, n]; empty for n < 3
//   - Start(n)  canonical RGS, 0-based slice where element e is at e−1
//   - RGS(n)    the S(n,2) strings obtained by replaying Moves from Start
package bipart
