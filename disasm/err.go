package disasm

import (
	"github.com/ezrec/ucsynth/translate"
)

var f = translate.From

type ErrParseWord string

func (err ErrParseWord) Error() string {
	return f("'%v' is not a 16-bit hex word", string(err))
}

// ErrLine indicates the input line of a parse error.
type ErrLine struct {
	LineNo int
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
