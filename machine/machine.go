package machine

import (
	"iter"
	"log"
	"math"
)

// Step is the observable outcome of executing one instruction.
type Step[T any] struct {
	Kind    StepKind
	Value   T   // Output value, valid when Kind is STEP_OUTPUT.
	Address int // Input destination, valid when Kind is STEP_INPUT.
}

// Machine executes a program image over the numeric domain T.
// Never shared between concurrent callers.
type Machine[T any] struct {
	Verbose bool // Set to enable verbose logging.

	num Num[T]
	mem *Memory[T]
	pc  int
	rel int64
}

// New creates a machine over num, loaded with image.
func New[T any](num Num[T], image []T) (m *Machine[T]) {
	m = &Machine[T]{
		num: num,
		mem: NewMemory(num, image),
	}

	return
}

// Reset restores a fresh image, clearing the program counter, the
// relative base, and the sparse memory tier.
func (m *Machine[T]) Reset(image []T) {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.pc = 0
	m.rel = 0
	m.mem.Reset(image)
}

// Cell reads the cell at addr.
func (m *Machine[T]) Cell(addr int) T {
	return m.mem.Load(addr)
}

// SetCell writes the cell at addr. Used by callers to satisfy a
// STEP_INPUT request before the next step.
func (m *Machine[T]) SetCell(addr int, v T) {
	m.mem.Store(addr, v)
}

// Memory exposes the machine's memory.
func (m *Machine[T]) Memory() *Memory[T] {
	return m.mem
}

// Step executes a single instruction and reports its outcome. On
// STEP_INPUT the caller must write a value to the returned address
// before stepping again; on STEP_OUTPUT the caller must consume the
// value. No instruction is partially applied on failure: every operand
// is resolved before any result is written.
func (m *Machine[T]) Step() (step Step[T], err error) {
	pos := m.pc
	defer func() {
		if err != nil {
			err = &ErrExec{Pos: pos, Err: err}
		}
	}()

	cell, err := m.num.Address(m.mem.Load(m.pc))
	if err != nil {
		return
	}
	op, modes, err := decode(cell)
	if err != nil {
		return
	}

	if m.Verbose {
		log.Printf("machine: %d: %v %v", m.pc, op, modes)
	}

	switch op {
	case OP_ADD:
		err = m.binary(modes, m.num.Add)
	case OP_MUL:
		err = m.binary(modes, m.num.Mul)
	case OP_IN:
		var addr int
		addr, err = m.dest(1, modes[0])
		if err != nil {
			return
		}
		m.pc += 2
		step = Step[T]{Kind: STEP_INPUT, Address: addr}
	case OP_OUT:
		var v T
		v, err = m.operand(1, modes[0])
		if err != nil {
			return
		}
		m.pc += 2
		step = Step[T]{Kind: STEP_OUTPUT, Value: v}
	case OP_JNZ:
		err = m.jump(modes, false)
	case OP_JZ:
		err = m.jump(modes, true)
	case OP_LT:
		err = m.compare(modes, m.num.IfLess)
	case OP_EQ:
		err = m.compare(modes, m.num.IfEqual)
	case OP_ARB:
		var v T
		v, err = m.operand(1, modes[0])
		if err != nil {
			return
		}
		var off int32
		off, err = m.num.Offset(v)
		if err != nil {
			return
		}
		m.rel += int64(off)
		m.pc += 2
	case OP_HALT:
		step = Step[T]{Kind: STEP_HALT}
	}

	return
}

// ExecuteUntilInput steps until the next I/O outcome, discarding
// STEP_RUN results.
func (m *Machine[T]) ExecuteUntilInput() (step Step[T], err error) {
	for {
		step, err = m.Step()
		if err != nil || step.Kind != STEP_RUN {
			return
		}
	}
}

// ExecuteToEnd runs the machine to termination, feeding inputs in
// order on every input request and collecting every output. Fails
// with ErrNoInput if the input sequence is exhausted before the
// machine halts.
func (m *Machine[T]) ExecuteToEnd(inputs iter.Seq[T]) (outputs []T, err error) {
	if inputs == nil {
		inputs = func(func(T) bool) {}
	}
	next, stop := iter.Pull(inputs)
	defer stop()

	for {
		var step Step[T]
		step, err = m.ExecuteUntilInput()
		if err != nil {
			return
		}

		switch step.Kind {
		case STEP_HALT:
			return
		case STEP_OUTPUT:
			outputs = append(outputs, step.Value)
		case STEP_INPUT:
			v, ok := next()
			if !ok {
				err = ErrNoInput
				return
			}
			m.mem.Store(step.Address, v)
		}
	}
}

// operand resolves the n'th operand of the current instruction for
// reading, interpreted under mode.
func (m *Machine[T]) operand(n int, mode Mode) (v T, err error) {
	raw := m.mem.Load(m.pc + n)

	switch mode {
	case MODE_IMMEDIATE:
		v = raw
	case MODE_POSITION:
		var addr int
		addr, err = m.num.Address(raw)
		if err != nil {
			return
		}
		v = m.mem.Load(addr)
	case MODE_RELATIVE:
		var addr int
		addr, err = m.relative(raw)
		if err != nil {
			return
		}
		v = m.mem.Load(addr)
	}

	return
}

// dest resolves the n'th operand as a write destination. An immediate
// destination is a decode error.
func (m *Machine[T]) dest(n int, mode Mode) (addr int, err error) {
	raw := m.mem.Load(m.pc + n)

	switch mode {
	case MODE_POSITION:
		addr, err = m.num.Address(raw)
	case MODE_RELATIVE:
		addr, err = m.relative(raw)
	case MODE_IMMEDIATE:
		err = ErrDestImmediate
	}

	return
}

// relative forms an effective address from a relative operand.
// Negative effective addresses are fatal, not a wraparound.
func (m *Machine[T]) relative(raw T) (addr int, err error) {
	off, err := m.num.Offset(raw)
	if err != nil {
		return
	}

	ea := m.rel + int64(off)
	if ea < 0 {
		err = ErrAddressNegative
		return
	}
	if ea > math.MaxInt {
		err = ErrAddressRange
		return
	}
	addr = int(ea)

	return
}

// isZero reports whether v compares equal to the domain's zero.
func (m *Machine[T]) isZero(v T) bool {
	zero := m.num.Zero()
	return !m.num.Less(v, zero) && !m.num.Less(zero, v)
}

// binary executes a three operand arithmetic instruction.
func (m *Machine[T]) binary(modes [3]Mode, combine func(a, b T) T) (err error) {
	a, err := m.operand(1, modes[0])
	if err != nil {
		return
	}
	b, err := m.operand(2, modes[1])
	if err != nil {
		return
	}
	addr, err := m.dest(3, modes[2])
	if err != nil {
		return
	}

	m.mem.Store(addr, combine(a, b))
	m.pc += 4

	return
}

// compare executes a three operand comparison instruction, storing the
// domain's one or zero.
func (m *Machine[T]) compare(modes [3]Mode, branch func(a, b, then, els T) T) (err error) {
	a, err := m.operand(1, modes[0])
	if err != nil {
		return
	}
	b, err := m.operand(2, modes[1])
	if err != nil {
		return
	}
	addr, err := m.dest(3, modes[2])
	if err != nil {
		return
	}

	m.mem.Store(addr, branch(a, b, m.num.One(), m.num.Zero()))
	m.pc += 4

	return
}

// jump executes a two operand conditional jump.
func (m *Machine[T]) jump(modes [3]Mode, whenZero bool) (err error) {
	cond, err := m.operand(1, modes[0])
	if err != nil {
		return
	}
	target, err := m.operand(2, modes[1])
	if err != nil {
		return
	}

	if m.isZero(cond) != whenZero {
		m.pc += 3
		return
	}

	addr, err := m.num.Address(target)
	if err != nil {
		return
	}
	m.pc = addr

	return
}
