package symbolic

// Simplify returns an expression semantically equivalent to e given
// that every condition in conditions holds, structurally reduced.
// Rebuilt conditionals simplify each branch under the condition list
// extended with the fact implied by taking that branch, so cost is in
// the worst case exponential in the number of unresolved conditionals;
// callers apply Simplify once per program and evaluate the residual
// expression many times.
func Simplify(e Expr, conditions Conditions) Expr {
	switch e := e.(type) {
	case Constant, Zero, One, Variable:
		return e
	case *IfEqual:
		return simplifyIfEqual(e, conditions)
	case *IfLess:
		return simplifyIfLess(e, conditions)
	case *Sum:
		return simplifySum(Simplify(e.A, conditions), Simplify(e.B, conditions), conditions)
	case *Product:
		return simplifyProduct(Simplify(e.A, conditions), Simplify(e.B, conditions), conditions)
	}

	return e
}

func simplifyIfEqual(e *IfEqual, conditions Conditions) Expr {
	a := Simplify(e.A, conditions)
	b := Simplify(e.B, conditions)

	for cond := range conditions.All() {
		if !strictEqual(a, cond.A) || !strictEqual(b, cond.B) {
			continue
		}
		switch cond.Kind {
		case COND_EQUAL:
			return Simplify(e.Then, conditions)
		case COND_NOT_EQUAL, COND_LESS:
			return Simplify(e.Else, conditions)
		}
	}

	if av, ok := constValue(a); ok {
		if bv, ok := constValue(b); ok {
			if av == bv {
				return Simplify(e.Then, conditions)
			}
			return Simplify(e.Else, conditions)
		}
	}
	if x, ok := a.(Variable); ok {
		if y, ok := b.(Variable); ok && x == y {
			return Simplify(e.Then, conditions)
		}
	}

	return &IfEqual{
		A:    a,
		B:    b,
		Then: Simplify(e.Then, conditions.Prepend(Condition{Kind: COND_EQUAL, A: a, B: b})),
		Else: Simplify(e.Else, conditions.Prepend(Condition{Kind: COND_NOT_EQUAL, A: a, B: b})),
	}
}

func simplifyIfLess(e *IfLess, conditions Conditions) Expr {
	a := Simplify(e.A, conditions)
	b := Simplify(e.B, conditions)

	for cond := range conditions.All() {
		if !strictEqual(a, cond.A) || !strictEqual(b, cond.B) {
			continue
		}
		switch cond.Kind {
		case COND_LESS:
			return Simplify(e.Then, conditions)
		case COND_EQUAL, COND_NOT_LESS:
			return Simplify(e.Else, conditions)
		}
	}

	return &IfLess{
		A:    a,
		B:    b,
		Then: Simplify(e.Then, conditions.Prepend(Condition{Kind: COND_LESS, A: a, B: b})),
		Else: Simplify(e.Else, conditions.Prepend(Condition{Kind: COND_NOT_LESS, A: a, B: b})),
	}
}

// simplifySum applies the additive rewrite table to two already
// simplified operands: identity elimination, constant folding,
// re-association floating constants left and variables right, and
// pushing a constant into both branches of a conditional under the
// correspondingly extended condition lists.
func simplifySum(a, b Expr, conditions Conditions) Expr {
	if isZero(a) {
		return b
	}
	if isZero(b) {
		return a
	}

	if av, ok := a.(Constant); ok {
		switch b := b.(type) {
		case Constant:
			return av + b
		case One:
			return av + 1
		case Variable:
			return &Sum{A: av, B: b}
		case *Sum:
			return &Sum{A: Simplify(&Sum{A: av, B: b.A}, conditions), B: b.B}
		case *Product:
			return &Sum{A: av, B: b}
		}
	}

	if _, ok := a.(One); ok {
		switch b := b.(type) {
		case Constant:
			return b + 1
		case One:
			return Constant(2)
		case Variable:
			return &Sum{A: One{}, B: b}
		case *Sum:
			return &Sum{A: Simplify(&Sum{A: One{}, B: b.A}, conditions), B: b.B}
		case *Product:
			return &Sum{A: One{}, B: b}
		}
	}

	if v, ok := a.(Variable); ok {
		return &Sum{A: b, B: v}
	}

	if s, ok := a.(*Sum); ok {
		return &Sum{A: s.A, B: Simplify(&Sum{A: s.B, B: b}, conditions)}
	}

	if l, ok := a.(*IfLess); ok {
		if c, ok := b.(Constant); ok {
			return addConstIfLess(l, c, conditions)
		}
	}
	if c, ok := a.(Constant); ok {
		if l, ok := b.(*IfLess); ok {
			return addConstIfLess(l, c, conditions)
		}
	}

	return &Sum{A: a, B: b}
}

// addConstIfLess pushes a constant addend into both branches of a
// conditional, simplifying each branch under the matching extended
// condition list.
func addConstIfLess(l *IfLess, c Constant, conditions Conditions) Expr {
	return &IfLess{
		A:    l.A,
		B:    l.B,
		Then: Simplify(&Sum{A: l.Then, B: c}, conditions.Prepend(Condition{Kind: COND_LESS, A: l.A, B: l.B})),
		Else: Simplify(&Sum{A: l.Else, B: c}, conditions.Prepend(Condition{Kind: COND_NOT_LESS, A: l.A, B: l.B})),
	}
}

// simplifyProduct applies the multiplicative rewrite table to two
// already simplified operands: annihilation and identity elimination,
// constant folding, distribution of a constant over a sum,
// re-association floating constants left, and pushing a factor into
// both branches of a conditional.
func simplifyProduct(a, b Expr, conditions Conditions) Expr {
	if isZero(a) || isZero(b) {
		return Zero{}
	}
	if isOne(a) {
		return b
	}
	if isOne(b) {
		return a
	}

	if av, ok := a.(Constant); ok {
		switch b := b.(type) {
		case Constant:
			return av * b
		case Variable:
			return &Product{A: av, B: b}
		case *Sum:
			return Simplify(&Sum{
				A: &Product{A: av, B: b.A},
				B: &Product{A: av, B: b.B},
			}, conditions)
		case *Product:
			return &Product{A: Simplify(&Product{A: av, B: b.A}, conditions), B: b.B}
		}
	}

	if bv, ok := b.(Constant); ok {
		if v, ok := a.(Variable); ok {
			return &Product{A: bv, B: v}
		}
		// Float the constant left and take another pass.
		return Simplify(&Product{A: bv, B: a}, conditions)
	}

	if _, ok := a.(Variable); ok {
		if _, ok := b.(Variable); ok {
			return &Product{A: a, B: b}
		}
	}

	if l, ok := a.(*IfLess); ok {
		return mulIfLess(l, b, conditions)
	}
	if l, ok := b.(*IfLess); ok {
		return mulIfLess(l, a, conditions)
	}

	return &Product{A: a, B: b}
}

// mulIfLess pushes a factor into both branches of a conditional,
// simplifying each branch under the matching extended condition list.
func mulIfLess(l *IfLess, other Expr, conditions Conditions) Expr {
	return &IfLess{
		A:    l.A,
		B:    l.B,
		Then: Simplify(&Product{A: l.Then, B: other}, conditions.Prepend(Condition{Kind: COND_LESS, A: l.A, B: l.B})),
		Else: Simplify(&Product{A: l.Else, B: other}, conditions.Prepend(Condition{Kind: COND_NOT_LESS, A: l.A, B: l.B})),
	}
}
