package pipeline

import (
	"log"

	"github.com/renik/symcode/machine"
)

// StageState is the scheduling state of one stage.
type StageState int

//go:generate go tool stringer -linecomment -type=StageState
const (
	STAGE_READY  = StageState(0) // ready
	STAGE_INPUT  = StageState(1) // input
	STAGE_OUTPUT = StageState(2) // output
	STAGE_HALTED = StageState(3) // halted
)

// stage is one machine plus its scheduling state. A stage holds at
// most one value: the pending output recorded in value until the next
// stage consumes it.
type stage[T any] struct {
	machine *machine.Machine[T]
	state   StageState
	addr    int // Input destination, valid in STAGE_INPUT.
	value   T   // Pending output, valid in STAGE_OUTPUT.
}

// Pipeline schedules a chain of machines round-robin, forwarding each
// stage's outputs to its successor. Never shared between concurrent
// callers.
type Pipeline[T any] struct {
	Verbose bool // Set to enable verbose logging.

	num    machine.Num[T]
	stages []stage[T]
}

// New creates a pipeline of count machines over num, each loaded with
// its own copy of image.
func New[T any](num machine.Num[T], image []T, count int) (p *Pipeline[T]) {
	p = &Pipeline[T]{
		num:    num,
		stages: make([]stage[T], count),
	}
	for n := range p.stages {
		p.stages[n].machine = machine.New(num, image)
	}

	return
}

// Prime runs every stage to its first input request and satisfies it
// with the corresponding setup value. Fails with ErrSetupLen when
// setup does not have one value per stage, and ErrNotAwaiting when a
// stage halts or emits before asking for input.
func (p *Pipeline[T]) Prime(setup []T) (err error) {
	if len(setup) != len(p.stages) {
		err = ErrSetupLen
		return
	}

	for n := range p.stages {
		st := &p.stages[n]

		var step machine.Step[T]
		step, err = st.machine.ExecuteUntilInput()
		if err != nil {
			return
		}
		if step.Kind != machine.STEP_INPUT {
			err = ErrNotAwaiting
			return
		}

		if p.Verbose {
			log.Printf("pipeline: stage %d: setup %v", n, setup[n])
		}
		st.machine.SetCell(step.Address, setup[n])
		st.state = STAGE_READY
	}

	return
}

// Run feeds input to the first stage and drives the chain until the
// final stage emits a value. ok is false when every stage went
// quiescent without a final output; the chain has then terminated.
func (p *Pipeline[T]) Run(input T) (out T, ok bool, err error) {
	last := &p.stages[len(p.stages)-1]
	if last.state == STAGE_OUTPUT {
		// Previous Run handed this value out already.
		last.state = STAGE_READY
	}

	fed := false
	for {
		progress := false

		for n := range p.stages {
			st := &p.stages[n]

			switch st.state {
			case STAGE_READY:
				var step machine.Step[T]
				step, err = st.machine.ExecuteUntilInput()
				if err != nil {
					return
				}
				progress = true

				switch step.Kind {
				case machine.STEP_INPUT:
					st.state = STAGE_INPUT
					st.addr = step.Address
				case machine.STEP_OUTPUT:
					st.state = STAGE_OUTPUT
					st.value = step.Value
				case machine.STEP_HALT:
					if p.Verbose {
						log.Printf("pipeline: stage %d: halted", n)
					}
					st.state = STAGE_HALTED
				}

			case STAGE_INPUT:
				if n == 0 {
					if fed {
						continue
					}
					st.machine.SetCell(st.addr, input)
					st.state = STAGE_READY
					fed = true
					progress = true
					continue
				}

				prev := &p.stages[n-1]
				switch prev.state {
				case STAGE_OUTPUT:
					st.machine.SetCell(st.addr, prev.value)
					prev.state = STAGE_READY
					st.state = STAGE_READY
					progress = true
				case STAGE_HALTED:
					err = ErrStarved(n)
					return
				}

			case STAGE_OUTPUT:
				if n == len(p.stages)-1 && fed {
					out = st.value
					ok = true
					return
				}
			}
		}

		if !progress {
			return
		}
	}
}

// RunFeedback loops the final stage's outputs back to the first stage,
// starting from initial, until the chain terminates. Returns the final
// value in flight.
func (p *Pipeline[T]) RunFeedback(initial T) (out T, err error) {
	out = initial
	for {
		var ok bool
		var v T
		v, ok, err = p.Run(out)
		if err != nil || !ok {
			return
		}
		out = v
	}
}

// Reset restores every stage to a fresh image for the next
// configuration.
func (p *Pipeline[T]) Reset(image []T) {
	for n := range p.stages {
		st := &p.stages[n]
		st.machine.Reset(image)
		st.state = STAGE_READY
	}
}
