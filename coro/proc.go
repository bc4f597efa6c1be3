package coro

// Body accumulates the instructions of one procedure activation.
// It is filled by the function passed to Proc.
type Body[T any] struct {
	ins []Instr[T]
}

// Emit appends an emission of v.
func (b *Body[T]) Emit(v T) {
	b.ins = append(b.ins, Emit(v))
}

// Call appends a call into f. A nil frame is ignored.
func (b *Body[T]) Call(f Frame[T]) {
	if f == nil {
		return
	}
	b.ins = append(b.ins, Call(f))
}

// Len reports how many instructions the body holds.
func (b *Body[T]) Len() int {
	return len(b.ins)
}

// proc is a Frame whose body is expanded on first resume.
type proc[T any] struct {
	fill     func(*Body[T])
	body     Body[T]
	pc       int
	expanded bool
}

// Proc returns a procedure frame. fill is invoked once, when the frame is
// first resumed, and must describe the body through b; it must not block.
// Child frames created inside fill stay unexpanded until the driver
// reaches them, so a body only costs what it lists.
func Proc[T any](fill func(b *Body[T])) Frame[T] {
	return &proc[T]{fill: fill}
}

// Resume hands out the next instruction of the body.
func (p *proc[T]) Resume() (Instr[T], bool) {
	if !p.expanded {
		p.expanded = true
		if p.fill != nil {
			p.fill(&p.body)
			p.fill = nil
		}
	}
	if p.pc >= len(p.body.ins) {
		p.body.ins = nil
		return Instr[T]{}, false
	}
	ins := p.body.ins[p.pc]
	p.body.ins[p.pc] = Instr[T]{} // drop the reference to a finished child
	p.pc++

	return ins, true
}

func (p *proc[T]) exhausted() bool {
	return p.expanded && p.pc >= len(p.body.ins)
}
