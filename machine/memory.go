package machine

import (
	"iter"
	"slices"
)

// Memory is a two tier cell store: a dense region holding the program
// image, and a sparse overflow tier for addresses beyond it. A cell
// present in neither tier reads as the domain's zero value. The dense
// region never grows.
type Memory[T any] struct {
	num    Num[T]
	dense  []T
	sparse map[int]T
}

// NewMemory creates a memory over num, with the dense region cloned
// from image.
func NewMemory[T any](num Num[T], image []T) (mem *Memory[T]) {
	mem = &Memory[T]{
		num:   num,
		dense: slices.Clone(image),
	}

	return
}

// Load reads the cell at addr.
func (mem *Memory[T]) Load(addr int) (v T) {
	if addr < len(mem.dense) {
		return mem.dense[addr]
	}

	v, ok := mem.sparse[addr]
	if !ok {
		v = mem.num.Zero()
	}

	return
}

// Store writes the cell at addr. Writes beyond the dense region land
// in the sparse tier.
func (mem *Memory[T]) Store(addr int, v T) {
	if addr < len(mem.dense) {
		mem.dense[addr] = v
		return
	}

	if mem.sparse == nil {
		mem.sparse = make(map[int]T, 16)
	}
	mem.sparse[addr] = v
}

// Len returns the size of the dense region.
func (mem *Memory[T]) Len() int {
	return len(mem.dense)
}

// Reset restores the dense region from image and drops the sparse tier.
func (mem *Memory[T]) Reset(image []T) {
	mem.dense = mem.dense[:0]
	mem.dense = append(mem.dense, image...)
	clear(mem.sparse)
}

// Cells iterates the dense region in address order.
func (mem *Memory[T]) Cells() iter.Seq[T] {
	return slices.Values(mem.dense)
}
