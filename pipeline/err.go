package pipeline

import (
	"errors"

	"github.com/renik/symcode/translate"
)

var f = translate.From

var (
	ErrNotAwaiting = errors.New(f("stage not awaiting input"))
	ErrSetupLen    = errors.New(f("setup length mismatch"))
)

// ErrStarved reports a stage awaiting input from a predecessor that
// has already halted.
type ErrStarved int

func (es ErrStarved) Error() string {
	return f("stage %d starved", int(es))
}

func (es ErrStarved) Is(err error) (ok bool) {
	_, ok = err.(ErrStarved)
	return
}
