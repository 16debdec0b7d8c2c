// Package asm assembles line-oriented mnemonic source into machine
// program images. It is a single pass assembler with equates, labels,
// and compile-time $(...) expression evaluation.
package asm
