// Package symbolic implements an algebraic expression tree that doubles
// as a numeric domain for the machine, plus a simplifier driven by path
// conditions.
//
// Running a machine over Domain turns a program into a closed-form
// expression over its free input variables. Simplify then reduces that
// expression by algebraic rewriting and by folding conditional branches
// under an accumulated, structurally shared list of path conditions.
// The residual expression is cheap to Eval many times, which is what
// makes boundary and range queries over large input spaces tractable.
package symbolic
