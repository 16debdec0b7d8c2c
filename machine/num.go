package machine

import (
	"math"
)

// Num is the capability contract a cell value must satisfy for the
// machine to execute over it. One interpreter body serves both the
// concrete integer domains below and the symbolic expression domain;
// the implementation is chosen at machine construction.
type Num[T any] interface {
	// Zero and One return the domain's identity elements.
	Zero() T
	One() T

	// Add and Mul are total over the domain. Symbolic implementations
	// build new tree nodes instead of computing a result.
	Add(a, b T) T
	Mul(a, b T) T

	// Less is a total ordering. Symbolic implementations force
	// evaluation and treat a free variable as fatal, since ordering is
	// only used by callers operating on concrete ranges.
	Less(a, b T) bool

	// Address interprets v as a non-negative memory address.
	Address(v T) (int, error)

	// Offset interprets v as a signed relative-base adjustment.
	Offset(v T) (int32, error)

	// IfLess builds the value that is then when a < b, otherwise els.
	IfLess(a, b, then, els T) T

	// IfEqual builds the value that is then when a = b, otherwise els.
	IfEqual(a, b, then, els T) T
}

// Int64 is the Num implementation over int64 cells, the primary
// concrete domain.
type Int64 struct{}

func (Int64) Zero() int64 { return 0 }
func (Int64) One() int64  { return 1 }

func (Int64) Add(a, b int64) int64 { return a + b }
func (Int64) Mul(a, b int64) int64 { return a * b }

func (Int64) Less(a, b int64) bool { return a < b }

func (Int64) Address(v int64) (addr int, err error) {
	if v < 0 {
		err = ErrAddressNegative
		return
	}
	if v > math.MaxInt {
		err = ErrAddressRange
		return
	}
	addr = int(v)
	return
}

func (Int64) Offset(v int64) (off int32, err error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		err = ErrOffsetRange
		return
	}
	off = int32(v)
	return
}

func (Int64) IfLess(a, b, then, els int64) int64 {
	if a < b {
		return then
	}
	return els
}

func (Int64) IfEqual(a, b, then, els int64) int64 {
	if a == b {
		return then
	}
	return els
}

// Int32 is the Num implementation over int32 cells, for programs whose
// values fit a narrower width.
type Int32 struct{}

func (Int32) Zero() int32 { return 0 }
func (Int32) One() int32  { return 1 }

func (Int32) Add(a, b int32) int32 { return a + b }
func (Int32) Mul(a, b int32) int32 { return a * b }

func (Int32) Less(a, b int32) bool { return a < b }

func (Int32) Address(v int32) (addr int, err error) {
	if v < 0 {
		err = ErrAddressNegative
		return
	}
	addr = int(v)
	return
}

func (Int32) Offset(v int32) (off int32, err error) {
	off = v
	return
}

func (Int32) IfLess(a, b, then, els int32) int32 {
	if a < b {
		return then
	}
	return els
}

func (Int32) IfEqual(a, b, then, els int32) int32 {
	if a == b {
		return then
	}
	return els
}
