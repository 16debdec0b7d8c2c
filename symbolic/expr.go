package symbolic

import (
	"fmt"
	"strconv"
)

// Expr is an immutable expression tree over integer constants and named
// free variables. The node set is closed: Constant, Zero, One,
// Variable, Sum, Product, IfEqual, and IfLess. Compound nodes own their
// children; the simplifier may share an already-reduced subtree between
// both branches of a freshly built conditional, but no node is ever
// mutated in place.
type Expr interface {
	fmt.Stringer
	expr()
}

// Constant is a literal value.
type Constant int64

// Zero is the additive identity, kept distinct from Constant(0) to
// shortcut common rewrites.
type Zero struct{}

// One is the multiplicative identity, kept distinct from Constant(1).
type One struct{}

// Variable is a named free input.
type Variable rune

// Sum is a + b.
type Sum struct {
	A, B Expr
}

// Product is a * b.
type Product struct {
	A, B Expr
}

// IfEqual selects Then when A = B, otherwise Else.
type IfEqual struct {
	A, B, Then, Else Expr
}

// IfLess selects Then when A < B, otherwise Else.
type IfLess struct {
	A, B, Then, Else Expr
}

func (Constant) expr() {}
func (Zero) expr()     {}
func (One) expr()      {}
func (Variable) expr() {}
func (*Sum) expr()     {}
func (*Product) expr() {}
func (*IfEqual) expr() {}
func (*IfLess) expr()  {}

func (c Constant) String() string { return strconv.FormatInt(int64(c), 10) }
func (Zero) String() string       { return "0" }
func (One) String() string        { return "1" }
func (v Variable) String() string { return string(rune(v)) }

func (s *Sum) String() string {
	return "(" + s.A.String() + " + " + s.B.String() + ")"
}

func (p *Product) String() string {
	return "(" + p.A.String() + " * " + p.B.String() + ")"
}

func (e *IfEqual) String() string {
	return fmt.Sprintf("If[%v == %v, %v, %v]", e.A, e.B, e.Then, e.Else)
}

func (l *IfLess) String() string {
	return fmt.Sprintf("If[%v < %v, %v, %v]", l.A, l.B, l.Then, l.Else)
}

// Image lifts a concrete program image into the symbolic domain.
func Image(cells []int64) (image []Expr) {
	image = make([]Expr, len(cells))
	for n, c := range cells {
		image[n] = Constant(c)
	}

	return
}

func isZero(e Expr) bool {
	switch e := e.(type) {
	case Zero:
		return true
	case Constant:
		return e == 0
	}
	return false
}

func isOne(e Expr) bool {
	switch e := e.(type) {
	case One:
		return true
	case Constant:
		return e == 1
	}
	return false
}

// constValue extracts the literal value of a Constant, Zero, or One.
func constValue(e Expr) (v int64, ok bool) {
	switch e := e.(type) {
	case Constant:
		return int64(e), true
	case Zero:
		return 0, true
	case One:
		return 1, true
	}
	return
}

// strictEqual is a syntactic comparator: identical tree shape, with
// Zero matching Constant(0) and One matching Constant(1). It never
// evaluates, so semantically equal trees of different shape (a+b
// versus b+a) compare unequal. Used by the simplifier to match an
// expression against a recorded condition's operands.
func strictEqual(a, b Expr) bool {
	switch a := a.(type) {
	case Constant:
		switch b := b.(type) {
		case Constant:
			return a == b
		case Zero:
			return a == 0
		case One:
			return a == 1
		}
	case Zero:
		switch b := b.(type) {
		case Zero:
			return true
		case Constant:
			return b == 0
		}
	case One:
		switch b := b.(type) {
		case One:
			return true
		case Constant:
			return b == 1
		}
	case Variable:
		b, ok := b.(Variable)
		return ok && a == b
	case *Sum:
		b, ok := b.(*Sum)
		return ok && strictEqual(a.A, b.A) && strictEqual(a.B, b.B)
	case *Product:
		b, ok := b.(*Product)
		return ok && strictEqual(a.A, b.A) && strictEqual(a.B, b.B)
	case *IfEqual:
		b, ok := b.(*IfEqual)
		return ok && strictEqual(a.A, b.A) && strictEqual(a.B, b.B) &&
			strictEqual(a.Then, b.Then) && strictEqual(a.Else, b.Else)
	case *IfLess:
		b, ok := b.(*IfLess)
		return ok && strictEqual(a.A, b.A) && strictEqual(a.B, b.B) &&
			strictEqual(a.Then, b.Then) && strictEqual(a.Else, b.Else)
	}
	return false
}

// Add builds x + y, normalizing on the way: identities vanish,
// constants fold and float left, nested sums re-associate, a constant
// pushes into both branches of a conditional, and the x + (-1)*x
// pattern collapses to Zero.
func Add(x, y Expr) Expr {
	if isZero(x) {
		return y
	}
	if isZero(y) {
		return x
	}

	if a, ok := x.(Constant); ok {
		if b, ok := y.(Constant); ok {
			return a + b
		}
	}

	if s, ok := x.(*Sum); ok {
		return Add(s.A, Add(s.B, y))
	}

	if c, ok := x.(Constant); ok {
		if l, ok := y.(*IfLess); ok {
			return &IfLess{A: l.A, B: l.B, Then: Add(l.Then, c), Else: Add(l.Else, c)}
		}
	}
	if c, ok := y.(Constant); ok {
		if l, ok := x.(*IfLess); ok {
			return &IfLess{A: l.A, B: l.B, Then: Add(l.Then, c), Else: Add(l.Else, c)}
		}
	}

	if a, ok := x.(Constant); ok {
		if s, ok := y.(*Sum); ok {
			if b, ok := s.A.(Constant); ok {
				return Add(a+b, s.B)
			}
			return &Sum{A: a, B: s}
		}
	}

	if lx, ok := x.(*IfLess); ok {
		if ly, ok := y.(*IfLess); ok {
			if strictEqual(lx.A, ly.A) && strictEqual(lx.B, ly.B) {
				return &IfLess{A: lx.A, B: lx.B, Then: Add(lx.Then, ly.Then), Else: Add(lx.Else, ly.Else)}
			}
			return &Sum{A: lx, B: ly}
		}
	}

	if p, ok := y.(*Product); ok {
		if c, ok := p.B.(Constant); ok && c == -1 && strictEqual(x, p.A) {
			return Zero{}
		}
	}

	return &Sum{A: x, B: y}
}

// Mul builds x * y, normalizing on the way: zero annihilates, the
// identities vanish, constants fold and distribute over sums, nested
// products re-associate, and a constant or variable pushes into both
// branches of a conditional.
func Mul(x, y Expr) Expr {
	if isZero(x) || isZero(y) {
		return Zero{}
	}
	if isOne(x) {
		return y
	}
	if isOne(y) {
		return x
	}

	if a, ok := x.(Constant); ok {
		if b, ok := y.(Constant); ok {
			return a * b
		}
	}

	if a, ok := x.(Constant); ok {
		if s, ok := y.(*Sum); ok {
			return Add(Mul(a, s.A), Mul(a, s.B))
		}
	}
	if a, ok := y.(Constant); ok {
		if s, ok := x.(*Sum); ok {
			return Add(Mul(a, s.A), Mul(a, s.B))
		}
	}

	if a, ok := x.(Constant); ok {
		if p, ok := y.(*Product); ok {
			if b, ok := p.A.(Constant); ok {
				return Mul(a*b, p.B)
			}
			return &Product{A: a, B: p}
		}
	}

	if l, ok := x.(*IfLess); ok {
		if c, ok := y.(Constant); ok {
			return &IfLess{A: l.A, B: l.B, Then: Mul(l.Then, c), Else: Mul(l.Else, c)}
		}
	}
	if c, ok := x.(Constant); ok {
		if l, ok := y.(*IfLess); ok {
			return &IfLess{A: l.A, B: l.B, Then: Mul(l.Then, c), Else: Mul(l.Else, c)}
		}
	}

	if p, ok := x.(*Product); ok {
		return Mul(p.A, Mul(p.B, y))
	}

	if l, ok := x.(*IfLess); ok {
		if v, ok := y.(Variable); ok {
			return &IfLess{A: l.A, B: l.B, Then: Mul(l.Then, v), Else: Mul(l.Else, v)}
		}
	}

	return &Product{A: x, B: y}
}
