// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script evaluates Starlark expressions over the instruction
// vocabulary, so that tables of instruction words can be written the way the
// generated header spells them:
//
//	INST_SIN | SCALE(-12) | ADDR(5)
//	CHANGE_SCALE(INST_APPROACH | ADDR(127), 2)
package script

import (
	"log"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ucsynth/inst"
)

// Env is an evaluation environment: the instruction constants, the field
// builtins, and any user defines.
type Env struct {
	Verbose bool // If set, logs every evaluation.

	define map[string]int
}

// NewEnv creates an environment with no user defines.
func NewEnv() (env *Env) {
	env = &Env{
		define: map[string]int{},
	}

	return
}

// Define adds a named integer, e.g. a slot address.
func (env *Env) Define(name string, value int) (err error) {
	if _, ok := env.define[name]; ok {
		err = ErrDefineDuplicate
		return
	}
	if _, ok := builtins[name]; ok {
		err = ErrDefineDuplicate
		return
	}
	for constant := range inst.Defines() {
		if constant == name {
			err = ErrDefineDuplicate
			return
		}
	}

	env.define[name] = value
	return
}

// Eval evaluates one expression with a fresh environment.
func Eval(expr string) (w inst.Word, err error) {
	return NewEnv().Eval(expr)
}

// Eval evaluates expr to an instruction word.
func (env *Env) Eval(expr string) (w inst.Word, err error) {
	thread := starlark.Thread{Name: "script"}
	opts := syntax.FileOptions{}

	pred := maps.Clone(builtins)
	for name, word := range inst.Defines() {
		pred[name] = starlark.MakeInt(int(word))
	}
	for name, value := range env.define {
		pred[name] = starlark.MakeInt(value)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xffff {
		err = &ErrWord{Expr: expr, Value: st_int64}
		return
	}

	w = inst.Word(st_int64)

	if env.Verbose {
		log.Printf("script: $(%v) = %v", expr, w)
	}

	return
}

// builtins are the field macros, as Starlark functions.
var builtins = starlark.StringDict{
	"ADDR": builtin1("ADDR", func(a int) inst.Word {
		return inst.Addr(a)
	}),
	"SCALE_CODE": builtin1("SCALE_CODE", func(x int) inst.Word {
		return inst.ScaleField(x)
	}),
	"SCALE": builtin1("SCALE", func(n int) inst.Word {
		return inst.Scale(n)
	}),
	"CHANGE_SCALE_CODE": builtin2("CHANGE_SCALE_CODE", func(w, x int) inst.Word {
		return inst.Word(w).ChangeScaleCode(x)
	}),
	"CHANGE_SCALE": builtin2("CHANGE_SCALE", func(w, n int) inst.Word {
		return inst.Word(w).ChangeScale(n)
	}),
}

func builtin1(name string, fn func(int) inst.Word) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var a int
		err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &a)
		if err != nil {
			return
		}
		value = starlark.MakeInt(int(fn(a)))
		return
	})
}

func builtin2(name string, fn func(int, int) inst.Word) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var a, c int
		err = starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &a, &c)
		if err != nil {
			return
		}
		value = starlark.MakeInt(int(fn(a, c)))
		return
	})
}
