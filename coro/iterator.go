package coro

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Iterator drives a tree of frames and yields its emissions one at a time.
// The zero value is an exhausted iterator.
type Iterator[T any] struct {
	frames *arraystack.Stack // live activations, innermost on top
	done   bool
}

// New returns an iterator positioned before the first emission of root.
// A nil root yields nothing.
func New[T any](root Frame[T]) *Iterator[T] {
	it := &Iterator[T]{frames: arraystack.New()}
	if root == nil {
		it.done = true
		return it
	}
	it.frames.Push(root)

	return it
}

// Next resumes the generator until it emits a value or runs out.
// It returns ok == false once the sequence is exhausted, and keeps doing so
// on every later call.
func (it *Iterator[T]) Next() (v T, ok bool) {
	if it.done || it.frames == nil {
		return v, false
	}
	for {
		top, live := it.frames.Peek()
		if !live {
			it.done = true
			return v, false
		}
		frame := top.(Frame[T])
		ins, more := frame.Resume()
		if !more {
			it.frames.Pop()
			continue
		}
		if ins.Call != nil {
			// A call in tail position replaces its caller.
			if t, isTailer := frame.(tailer); isTailer && t.exhausted() {
				it.frames.Pop()
			}
			it.frames.Push(ins.Call)
			continue
		}

		return ins.Value, true
	}
}

// Depth reports how many activations are currently suspended.
func (it *Iterator[T]) Depth() int {
	if it.frames == nil {
		return 0
	}
	return it.frames.Size()
}

// All adapts the remaining values of it to a single-use iter.Seq.
// Stopping a range loop early leaves the rest of it untouched.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Seq returns a restartable sequence: every range over it calls mk for a
// fresh root frame, so each pass replays the generator from the start.
func Seq[T any](mk func() Frame[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		New(mk()).All()(yield)
	}
}

// Count reports how many values seq yields.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
