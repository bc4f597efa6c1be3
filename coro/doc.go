// Package coro provides the suspend/resume machinery shared by every
// generator in ecgen.
//
// What:
//
//   - A generator is written as a procedure: a body of instructions, each
//     either an emission of a value or a call into a sub-procedure.
//   - Iterator walks the resulting tree of procedure activations with an
//     explicit frame stack, suspending after every emission and resuming
//     exactly where it stopped on the next pull.
//   - Bodies are expanded lazily, on the first resume of their frame, so a
//     generator never holds more than its live recursion path in memory.
//
// Why:
//
//   - Mutually recursive enumeration algorithms (set partitions, revolving
//     door combinations) read naturally as recursive procedures, but native
//     recursion cannot suspend mid-call without goroutines.
//   - A heap-allocated frame stack keeps the call depth independent of the
//     goroutine stack and makes abandoning a sequence free.
//
// Key Types:
//
//   - Instr[T]     one instruction: Emit(v) or Call(frame)
//   - Frame[T]     a resumable activation; Resume returns its next Instr
//   - Body[T]      builder used by Proc to describe a procedure body
//   - Iterator[T]  pull-style driver with Next() (T, bool)
//
// Functions:
//
//   - Proc(fill)        procedure frame whose body is produced by fill
//   - FrameFunc(fn)     adapts a closure (iterative state machine) to Frame
//   - Empty()           frame that returns immediately
//   - New(root)         iterator over a single instantiation
//   - Seq(mk)           restartable iter.Seq; every range calls mk afresh
//   - Count(seq)        number of values a sequence yields
//
// Complexity:
//
//   - Next: amortized O(1) per emitted value for balanced procedures;
//     a single Next may descend through several empty activations.
//   - Memory: O(depth · body size) for the live path of activations.
//
// Concurrency:
//
//   - An Iterator is not safe for concurrent use. Separate iterators share
//     nothing and may run on separate goroutines.
package coro
