package machine

import (
	"errors"

	"github.com/renik/symcode/translate"
)

var f = translate.From

var (
	// Addressing errors
	ErrAddressNegative = errors.New(f("address negative"))
	ErrAddressRange    = errors.New(f("address too large"))
	ErrOffsetRange     = errors.New(f("offset out of range"))

	// Instruction decode errors
	ErrDestImmediate = errors.New(f("immediate destination"))

	// I/O starvation
	ErrNoInput = errors.New(f("input exhausted"))
)

type ErrBadOpcode int

func (eo ErrBadOpcode) Error() string {
	return f("bad opcode %d", int(eo))
}

func (eo ErrBadOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrBadOpcode)
	return
}

type ErrBadMode int

func (em ErrBadMode) Error() string {
	return f("bad parameter mode %d", int(em))
}

func (em ErrBadMode) Is(err error) (ok bool) {
	_, ok = err.(ErrBadMode)
	return
}

// ErrExec wraps a failure with the program counter at which the failing
// instruction was decoded.
type ErrExec struct {
	Pos int
	Err error
}

func (err ErrExec) Error() string {
	return f("at %d: %v", err.Pos, err.Err)
}

func (err ErrExec) Unwrap() error {
	return err.Err
}
