package symbolic

import (
	"iter"
)

// ConditionKind tags the relation a Condition asserts between its
// operands.
type ConditionKind int

//go:generate go tool stringer -linecomment -type=ConditionKind
const (
	COND_LESS      = ConditionKind(0) // less
	COND_EQUAL     = ConditionKind(1) // equal
	COND_NOT_EQUAL = ConditionKind(2) // not-equal
	COND_NOT_LESS  = ConditionKind(3) // not-less
)

// Condition is a fact assumed true on the simplification path being
// explored: Kind relates A to B.
type Condition struct {
	Kind ConditionKind
	A, B Expr
}

func (cond Condition) String() string {
	return f("%v %v %v", cond.A, cond.Kind, cond.B)
}

// Conditions is an immutable, share-on-prepend list of path conditions.
// The zero value is the empty list. Independent simplification branches
// extend the same list without copying or disturbing each other.
type Conditions struct {
	head *conditionNode
}

type conditionNode struct {
	cond Condition
	next *conditionNode
}

// Prepend returns a new list with cond at the front. The receiver is
// unchanged; both lists share the existing nodes.
func (cs Conditions) Prepend(cond Condition) Conditions {
	return Conditions{head: &conditionNode{cond: cond, next: cs.head}}
}

// All iterates conditions from most recently prepended to oldest. The
// sequence is restartable.
func (cs Conditions) All() iter.Seq[Condition] {
	return func(yield func(Condition) bool) {
		for node := cs.head; node != nil; node = node.next {
			if !yield(node.cond) {
				return
			}
		}
	}
}
