package inst

import (
	"errors"

	"github.com/ezrec/ucsynth/translate"
)

var f = translate.From

var (
	// Checked constructor errors
	ErrOutOfRange = errors.New(f("out of range"))

	// Catalog errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
)

// ErrRange reports a field value that does not fit its bit-field.
type ErrRange struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (err *ErrRange) Error() string {
	return f("%v %d not in [%d, %d]", err.Field, err.Value, err.Min, err.Max)
}

func (err *ErrRange) Unwrap() error {
	return ErrOutOfRange
}

type ErrOpcodeName string

func (err ErrOpcodeName) Error() string {
	return f("'%v' is not an opcode", string(err))
}

func (err ErrOpcodeName) Unwrap() error {
	return ErrOpcodeUnknown
}
