// Package machine implements a register-light, memory-addressed virtual
// machine with suspend/resume I/O.
//
// The machine is parameterized over its numeric domain through the Num
// contract, so the same decode/execute core runs over concrete integers
// (Int64, Int32) or over symbolic expression trees supplied by a caller.
// Memory has a dense region holding the program image and a sparse
// overflow tier for addresses beyond it; absent cells read as zero.
//
// Execution is cooperative: Step returns control to the caller at every
// input and output point instead of blocking.
package machine
