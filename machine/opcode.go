package machine

// Opcode selects an instruction, decoded from the cell at the program
// counter modulo 100.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JNZ  = Opcode(5)  // jnz
	OP_JZ   = Opcode(6)  // jz
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

// Mode selects how an operand's raw value is interpreted.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

// StepKind classifies the observable outcome of a single step.
type StepKind int

//go:generate go tool stringer -linecomment -type=StepKind
const (
	STEP_RUN    = StepKind(0) // run
	STEP_INPUT  = StepKind(1) // input
	STEP_OUTPUT = StepKind(2) // output
	STEP_HALT   = StepKind(3) // halt
)

// decode splits a raw instruction cell into its opcode and the mode
// digit for each of the three possible operands. Mode digits beyond
// the valid set, and trailing nonzero digits, are decode errors.
func decode(cell int) (op Opcode, modes [3]Mode, err error) {
	op = Opcode(cell % 100)
	switch op {
	case OP_ADD, OP_MUL, OP_IN, OP_OUT, OP_JNZ, OP_JZ, OP_LT, OP_EQ, OP_ARB, OP_HALT:
		// recognized
	default:
		err = ErrBadOpcode(cell % 100)
		return
	}

	digits := cell / 100
	for n := range modes {
		mode := Mode(digits % 10)
		digits /= 10
		switch mode {
		case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
			modes[n] = mode
		default:
			err = ErrBadMode(int(mode))
			return
		}
	}
	if digits != 0 {
		err = ErrBadMode(digits % 10)
		return
	}

	return
}
