package symbolic

// Lookup resolves a free variable to its binding, reporting false when
// the variable is unbound.
type Lookup func(name rune) (int64, bool)

// Eval resolves e to a concrete value under vars. The first unbound
// Variable reached aborts evaluation with ErrUnbound. Conditionals
// evaluate both compared operands, then only the taken branch.
func Eval(e Expr, vars Lookup) (v int64, err error) {
	switch e := e.(type) {
	case Constant:
		v = int64(e)
	case Zero:
		v = 0
	case One:
		v = 1
	case Variable:
		var ok bool
		v, ok = vars(rune(e))
		if !ok {
			err = ErrUnbound(e)
		}
	case *Sum:
		var a, b int64
		a, err = Eval(e.A, vars)
		if err != nil {
			return
		}
		b, err = Eval(e.B, vars)
		v = a + b
	case *Product:
		var a, b int64
		a, err = Eval(e.A, vars)
		if err != nil {
			return
		}
		b, err = Eval(e.B, vars)
		v = a * b
	case *IfEqual:
		var a, b int64
		a, err = Eval(e.A, vars)
		if err != nil {
			return
		}
		b, err = Eval(e.B, vars)
		if err != nil {
			return
		}
		if a == b {
			v, err = Eval(e.Then, vars)
		} else {
			v, err = Eval(e.Else, vars)
		}
	case *IfLess:
		var a, b int64
		a, err = Eval(e.A, vars)
		if err != nil {
			return
		}
		b, err = Eval(e.B, vars)
		if err != nil {
			return
		}
		if a < b {
			v, err = Eval(e.Then, vars)
		} else {
			v, err = Eval(e.Else, vars)
		}
	}

	return
}
