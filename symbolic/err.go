package symbolic

import (
	"github.com/renik/symcode/translate"
)

var f = translate.From

// ErrUnbound reports evaluation reaching a free variable with no
// binding, naming the variable.
type ErrUnbound rune

func (eu ErrUnbound) Error() string {
	return f("variable %c unbound", rune(eu))
}

func (eu ErrUnbound) Is(err error) (ok bool) {
	_, ok = err.(ErrUnbound)
	return
}
