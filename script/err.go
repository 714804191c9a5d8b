package script

import (
	"errors"

	"github.com/ezrec/ucsynth/translate"
)

var f = translate.From

var (
	ErrDefineDuplicate = errors.New(f("define duplicated"))
)

// ErrExpression reports an expression that does not evaluate to an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrWord reports an expression whose value does not fit in a word.
type ErrWord struct {
	Expr  string
	Value int64
}

func (err *ErrWord) Error() string {
	return f("$(%v) = %d does not fit in 16 bits", err.Expr, err.Value)
}
