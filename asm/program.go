package asm

import (
	"iter"
)

// Opcode is one assembled source line.
type Opcode struct {
	LineNo int      // Source line number.
	Addr   int      // Cell address of the first assembled cell.
	Words  []string // Source words after substitution.
	Cells  []int64  // Assembled cells.
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug locates the source line covering a cell address.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+len(op.Cells) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Addr,
			}
			break
		}
	}

	return
}

// Image flattens the program into a memory image, suitable for
// machine.New.
func (prog *Program) Image() (image []int64) {
	for addr, cell := range prog.Cells() {
		for addr >= len(image) {
			image = append(image, 0)
		}
		image[addr] = cell
	}

	return
}

// Cells yields every assembled cell with its address.
func (prog *Program) Cells() iter.Seq2[int, int64] {
	return func(yield func(addr int, cell int64) bool) {
		for _, op := range prog.Opcodes {
			for n, cell := range op.Cells {
				if !yield(op.Addr+n, cell) {
					return
				}
			}
		}
	}
}
