package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucsynth/inst"
)

func TestEval(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr string
		word inst.Word
	}){
		{"INST_SIN | SCALE(-12) | ADDR(5)", 0x9105},
		{"INST_APPROACH | SCALE_MINUS_FOUR | ADDR(127)", 0x4f7f},
		{"INST_APPROACH | SCALE_CODE(15) | ADDR(127)", 0x4f7f},
		{"INST_SIN | SCALE(2)", 0x9f00},
		{"ADDR(200)", 0x0048},
		{"SCALE_CODE(17)", 0x0100},
		{"CHANGE_SCALE_CODE(0x9105, 13)", 0x9d05},
		{"CHANGE_SCALE(INST_SIN | ADDR(5), 0)", 0x9d05},
		{"INST_OUTPUT | 0x0100", inst.Word(inst.INST_OUTPUT_RIGHT)},
		{"INST_PULSE | 0x0d00", inst.Word(inst.INST_SQUARE)},
		{"INST_NOP", 0},
		{"INST_SAWTOOTH", 0},
		{"INST_TRIANGLE | ADDR(1 << 3)", 0x7c08},
	}

	for _, entry := range table {
		w, err := Eval(entry.expr)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.word, w, entry.expr)
	}
}

func TestEvalDefine(t *testing.T) {
	assert := assert.New(t)

	env := NewEnv()
	assert.NoError(env.Define("OSC0", 12))
	assert.True(errors.Is(env.Define("OSC0", 13), ErrDefineDuplicate))
	assert.True(errors.Is(env.Define("SCALE", 1), ErrDefineDuplicate))
	assert.True(errors.Is(env.Define("INST_SIN", 1), ErrDefineDuplicate))

	w, err := env.Eval("INST_PHASE_UPDATE | SCALE(-3) | ADDR(OSC0)")
	assert.NoError(err)
	assert.Equal(inst.Word(0x1a0c), w)
}

func TestEvalErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Eval("'sin'")
	assert.Equal(ErrExpression("'sin'"), err)

	_, err = Eval("INST_SIN << 4")
	var wordErr *ErrWord
	if assert.True(errors.As(err, &wordErr)) {
		assert.Equal(int64(0x90000), wordErr.Value)
	}

	_, err = Eval("-1")
	assert.True(errors.As(err, &wordErr))

	_, err = Eval("INST_COS")
	assert.Error(err)

	_, err = Eval("ADDR()")
	assert.Error(err)

	_, err = Eval("ADDR(")
	assert.Error(err)
}
