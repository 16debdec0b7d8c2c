package symbolic

import (
	"math"

	"github.com/renik/symcode/machine"
)

// Domain adapts the expression tree to the machine's numeric contract,
// letting one machine body execute over symbolic cells. Add and Mul
// build normalized tree nodes; Address and Offset force evaluation and
// fail on unresolved variables.
type Domain struct{}

var _ machine.Num[Expr] = Domain{}

func (Domain) Zero() Expr { return Zero{} }
func (Domain) One() Expr  { return One{} }

func (Domain) Add(a, b Expr) Expr { return Add(a, b) }
func (Domain) Mul(a, b Expr) Expr { return Mul(a, b) }

// Less forces both sides to a concrete value. Reaching a free variable
// panics: ordering is structurally used only by callers operating on
// concrete ranges, so an unbound variable here is a caller bug.
func (Domain) Less(a, b Expr) bool {
	av, err := Eval(a, unbound)
	if err != nil {
		panic(err)
	}
	bv, err := Eval(b, unbound)
	if err != nil {
		panic(err)
	}
	return av < bv
}

func (Domain) Address(v Expr) (addr int, err error) {
	val, err := Eval(v, unbound)
	if err != nil {
		return
	}
	if val < 0 {
		err = machine.ErrAddressNegative
		return
	}
	if val > math.MaxInt {
		err = machine.ErrAddressRange
		return
	}
	addr = int(val)

	return
}

func (Domain) Offset(v Expr) (off int32, err error) {
	val, err := Eval(v, unbound)
	if err != nil {
		return
	}
	if val > math.MaxInt32 || val < math.MinInt32 {
		err = machine.ErrOffsetRange
		return
	}
	off = int32(val)

	return
}

func (Domain) IfEqual(a, b, then, els Expr) Expr {
	return &IfEqual{A: a, B: b, Then: then, Else: els}
}

// IfLess shortcuts the absolute-value pattern 0 < If[0 < x, x, -1*x]
// to its taken branch (exact only for x != 0; the pigeonhole callers
// constrain x to positive ranges).
func (Domain) IfLess(a, b, then, els Expr) Expr {
	if isZero(a) {
		if l, ok := b.(*IfLess); ok && isZero(l.A) {
			if x, ok := l.B.(Variable); ok {
				if x2, ok := l.Then.(Variable); ok && x == x2 {
					if p, ok := l.Else.(*Product); ok {
						if c, ok := p.A.(Constant); ok && c == -1 {
							if x3, ok := p.B.(Variable); ok && x2 == x3 {
								return then
							}
						}
					}
				}
			}
		}
	}

	return &IfLess{A: a, B: b, Then: then, Else: els}
}

// unbound is the empty variable lookup.
func unbound(rune) (int64, bool) { return 0, false }
