package coro

// Instr is one instruction of a procedure body. When Call is non-nil the
// instruction transfers control into that sub-procedure; otherwise it
// emits Value.
type Instr[T any] struct {
	Value T
	Call  Frame[T]
}

// Emit returns an instruction that yields v to the consumer.
func Emit[T any](v T) Instr[T] {
	return Instr[T]{Value: v}
}

// Call returns an instruction that runs f to completion before the
// calling frame is resumed again.
func Call[T any](f Frame[T]) Instr[T] {
	return Instr[T]{Call: f}
}

// Frame is a resumable procedure activation.
// Resume reports the next instruction, or ok == false once the procedure
// has returned. A frame is never resumed again after it returned.
type Frame[T any] interface {
	Resume() (ins Instr[T], ok bool)
}

// FrameFunc adapts an ordinary function to the Frame interface.
// It is the natural fit for iterative engines that keep their own state.
type FrameFunc[T any] func() (Instr[T], bool)

// Resume calls f.
func (f FrameFunc[T]) Resume() (Instr[T], bool) {
	return f()
}

// Empty returns a frame that returns without emitting anything.
func Empty[T any]() Frame[T] {
	return FrameFunc[T](func() (Instr[T], bool) {
		return Instr[T]{}, false
	})
}

// tailer is implemented by frames that can tell whether the instruction
// they just handed out was their last one. The driver uses it to drop the
// caller before entering a tail call.
type tailer interface {
	exhausted() bool
}
