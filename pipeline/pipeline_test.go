package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renik/symcode/machine"
)

// runChain primes a fresh pipeline with setup and feeds it one zero.
func runChain[T any](t *testing.T, num machine.Num[T], image []T, setup []T) (out T, err error) {
	t.Helper()

	p := New(num, image, len(setup))
	err = p.Prime(setup)
	if err != nil {
		return
	}

	out, ok, err := p.Run(num.Zero())
	if err == nil {
		assert.True(t, ok)
	}

	return
}

func TestChain(t *testing.T) {
	assert := assert.New(t)

	for _, tt := range []struct {
		name  string
		image []int64
		setup []int64
		want  int64
	}{
		{
			"multiply_then_add",
			[]int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
			[]int64{4, 3, 2, 1, 0},
			43210,
		},
		{
			"tripler",
			[]int64{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23, 101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
			[]int64{0, 1, 2, 3, 4},
			54321,
		},
		{
			"polynomial",
			[]int64{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33, 1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
			[]int64{1, 0, 4, 3, 2},
			65210,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runChain(t, machine.Int64{}, tt.image, tt.setup)
			assert.NoError(err)
			assert.Equal(tt.want, out)
		})
	}
}

// TestChainInt32 runs a chain over the narrow concrete domain.
func TestChainInt32(t *testing.T) {
	assert := assert.New(t)

	image := []int32{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	out, err := runChain(t, machine.Int32{}, image, []int32{4, 3, 2, 1, 0})
	assert.NoError(err)
	assert.Equal(int32(43210), out)
}

func TestFeedback(t *testing.T) {
	for _, tt := range []struct {
		name  string
		image []int64
		setup []int64
		want  int64
	}{
		{
			"countdown",
			[]int64{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26, 27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
			[]int64{9, 8, 7, 6, 5},
			139629729,
		},
		{
			"interleaved",
			[]int64{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54, -5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4, 53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
			[]int64{9, 7, 8, 5, 6},
			18216,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			p := New(machine.Int64{}, tt.image, len(tt.setup))
			assert.NoError(p.Prime(tt.setup))

			out, err := p.RunFeedback(0)
			assert.NoError(err)
			assert.Equal(tt.want, out)
		})
	}
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	image := []int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}

	p := New(machine.Int64{}, image, 5)
	assert.NoError(p.Prime([]int64{4, 3, 2, 1, 0}))
	out, ok, err := p.Run(0)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(int64(43210), out)

	// A fresh image accepts a different setup.
	p.Reset(image)
	assert.NoError(p.Prime([]int64{0, 1, 2, 3, 4}))
	out, ok, err = p.Run(0)
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(int64(1234), out)
}

func TestPrimeErrors(t *testing.T) {
	assert := assert.New(t)

	image := []int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}

	p := New(machine.Int64{}, image, 3)
	assert.ErrorIs(p.Prime([]int64{1, 2}), ErrSetupLen)

	// A program that halts without asking for input cannot be primed.
	p = New(machine.Int64{}, []int64{104, 7, 99}, 1)
	assert.ErrorIs(p.Prime([]int64{0}), ErrNotAwaiting)
}

func TestStarved(t *testing.T) {
	assert := assert.New(t)

	// The setup value selects how many values a stage consumes: 0 one,
	// 1 two. The first stage halts after a single output, starving the
	// second stage's second read.
	image := []int64{3, 15, 3, 16, 1005, 15, 10, 4, 16, 99, 3, 16, 4, 16, 99, 0, 0}

	p := New(machine.Int64{}, image, 2)
	assert.NoError(p.Prime([]int64{0, 1}))

	_, _, err := p.Run(7)
	assert.ErrorIs(err, ErrStarved(1))
}
