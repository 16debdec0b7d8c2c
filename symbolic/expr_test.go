package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert := assert.New(t)

	for _, tt := range []struct {
		expr Expr
		want string
	}{
		{Constant(42), "42"},
		{Constant(-7), "-7"},
		{Zero{}, "0"},
		{One{}, "1"},
		{Variable('x'), "x"},
		{&Sum{A: Variable('x'), B: Constant(3)}, "(x + 3)"},
		{&Product{A: Constant(2), B: Variable('y')}, "(2 * y)"},
		{
			&IfEqual{A: Variable('x'), B: Zero{}, Then: One{}, Else: Zero{}},
			"If[x == 0, 1, 0]",
		},
		{
			&IfLess{A: Zero{}, B: Variable('x'), Then: Variable('x'), Else: &Product{A: Constant(-1), B: Variable('x')}},
			"If[0 < x, x, (-1 * x)]",
		},
	} {
		assert.Equal(tt.want, tt.expr.String())
	}
}

func TestImage(t *testing.T) {
	assert := assert.New(t)

	image := Image([]int64{1, 0, -3})
	assert.Equal([]Expr{Constant(1), Constant(0), Constant(-3)}, image)
	assert.Empty(Image(nil))
}

func TestStrictEqual(t *testing.T) {
	assert := assert.New(t)

	x := Variable('x')
	sum := &Sum{A: x, B: Constant(2)}

	for _, tt := range []struct {
		name string
		a, b Expr
		want bool
	}{
		{"constant", Constant(3), Constant(3), true},
		{"constant_differ", Constant(3), Constant(4), false},
		{"zero_constant", Zero{}, Constant(0), true},
		{"constant_zero", Constant(0), Zero{}, true},
		{"one_constant", One{}, Constant(1), true},
		{"constant_one", Constant(1), One{}, true},
		{"zero_one", Zero{}, One{}, false},
		{"variable", x, Variable('x'), true},
		{"variable_differ", x, Variable('y'), false},
		{"sum", sum, &Sum{A: Variable('x'), B: Constant(2)}, true},
		{"sum_swapped", sum, &Sum{A: Constant(2), B: x}, false},
		{"sum_product", sum, &Product{A: x, B: Constant(2)}, false},
		{
			"if_less",
			&IfLess{A: Zero{}, B: x, Then: One{}, Else: Zero{}},
			&IfLess{A: Constant(0), B: x, Then: Constant(1), Else: Constant(0)},
			true,
		},
		{
			"if_equal_branch_differ",
			&IfEqual{A: x, B: Zero{}, Then: One{}, Else: Zero{}},
			&IfEqual{A: x, B: Zero{}, Then: Zero{}, Else: Zero{}},
			false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(tt.want, strictEqual(tt.a, tt.b))
		})
	}
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	x := Variable('x')
	y := Variable('y')

	// Identities and folding.
	assert.Equal(x, Add(Zero{}, x))
	assert.Equal(x, Add(x, Zero{}))
	assert.Equal(x, Add(x, Constant(0)))
	assert.Equal(Constant(5), Add(Constant(2), Constant(3)))

	// Nested sums re-associate to the right.
	assert.Equal(
		&Sum{A: x, B: &Sum{A: y, B: Constant(1)}},
		Add(&Sum{A: x, B: y}, Constant(1)),
	)

	// A constant addend folds into a sum's constant head.
	assert.Equal(
		&Sum{A: Constant(5), B: x},
		Add(Constant(2), &Sum{A: Constant(3), B: x}),
	)

	// A constant pushes into both branches of a conditional.
	cond := &IfLess{A: Zero{}, B: x, Then: Constant(10), Else: Constant(20)}
	assert.Equal(
		&IfLess{A: Zero{}, B: x, Then: Constant(11), Else: Constant(21)},
		Add(cond, Constant(1)),
	)
	assert.Equal(
		&IfLess{A: Zero{}, B: x, Then: Constant(11), Else: Constant(21)},
		Add(Constant(1), cond),
	)

	// Conditionals over the same comparison merge branchwise.
	assert.Equal(
		&IfLess{A: Zero{}, B: x, Then: Constant(30), Else: Constant(3)},
		Add(
			&IfLess{A: Zero{}, B: x, Then: Constant(10), Else: Constant(1)},
			&IfLess{A: Zero{}, B: x, Then: Constant(20), Else: Constant(2)},
		),
	)

	// x + x*-1 collapses.
	assert.Equal(Zero{}, Add(x, &Product{A: x, B: Constant(-1)}))
	assert.Equal(Zero{}, Add(x, Mul(x, Constant(-1))))
}

func TestMul(t *testing.T) {
	assert := assert.New(t)

	x := Variable('x')
	y := Variable('y')

	// Annihilation, identities, folding.
	assert.Equal(Zero{}, Mul(Zero{}, x))
	assert.Equal(Zero{}, Mul(x, Constant(0)))
	assert.Equal(x, Mul(One{}, x))
	assert.Equal(x, Mul(x, Constant(1)))
	assert.Equal(Constant(6), Mul(Constant(2), Constant(3)))

	// A constant distributes over a sum.
	assert.Equal(
		&Sum{A: &Product{A: Constant(2), B: x}, B: Constant(6)},
		Mul(Constant(2), &Sum{A: x, B: Constant(3)}),
	)
	assert.Equal(
		&Sum{A: &Product{A: Constant(2), B: x}, B: Constant(6)},
		Mul(&Sum{A: x, B: Constant(3)}, Constant(2)),
	)

	// A constant factor folds into a product's constant head.
	assert.Equal(
		&Product{A: Constant(6), B: x},
		Mul(Constant(2), &Product{A: Constant(3), B: x}),
	)

	// Nested products re-associate to the right.
	assert.Equal(
		&Product{A: x, B: &Product{A: y, B: y}},
		Mul(&Product{A: x, B: y}, y),
	)

	// A factor pushes into both branches of a conditional.
	cond := &IfLess{A: Zero{}, B: x, Then: Constant(10), Else: Constant(20)}
	assert.Equal(
		&IfLess{A: Zero{}, B: x, Then: Constant(30), Else: Constant(60)},
		Mul(cond, Constant(3)),
	)
	assert.Equal(
		&IfLess{A: Zero{}, B: x, Then: Constant(30), Else: Constant(60)},
		Mul(Constant(3), cond),
	)
	assert.Equal(
		&IfLess{A: Zero{}, B: x, Then: &Product{A: Constant(10), B: y}, Else: &Product{A: Constant(20), B: y}},
		Mul(cond, y),
	)
}
