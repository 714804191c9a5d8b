// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package inst

import (
	"fmt"
)

// Instruction is a decoded Word. The concrete type follows the CodeClass
// of the opcode, and exposes only the accessor meaningful for that class.
type Instruction interface {
	// Word returns the original instruction word, unchanged.
	Word() Word
	// Opcode returns the opcode constant the word was built from.
	Opcode() Opcode
	// Class returns the class of the opcode.
	Class() CodeClass
	// Address returns the address field.
	Address() int
	// String returns a disassembly of the instruction.
	String() string

	sealed()
}

// Decode returns the class-specific view of the word.
// Every word decodes; Decode(w).Word() == w.
func (w Word) Decode() Instruction {
	switch w.Class() {
	case CLASS_CONTROL:
		return ControlInst{view{w}}
	case CLASS_SCALED:
		return ScaledInst{view{w}}
	case CLASS_SHAPED:
		return ShapedInst{view{w}}
	case CLASS_OUTPUT:
		return OutputInst{view{w}}
	default:
		return ReservedInst{view{w}}
	}
}

// view holds the accessors common to all classes.
type view struct {
	word Word
}

func (v view) Word() Word {
	return v.word
}

func (v view) Class() CodeClass {
	return v.word.Class()
}

func (v view) Address() int {
	return v.word.Address()
}

func (v view) sealed() {}

// operands formats the address and the reserved bit.
func (v view) operands() string {
	str := fmt.Sprintf("@%d", v.word.Address())
	if v.word.Reserved() {
		str += " +r7"
	}
	return str
}

// ControlInst is an instruction of the zero opcode nibble: nop, enable, disable.
type ControlInst struct{ view }

// MakeControl builds a control instruction.
func MakeControl(ctl Control, addr int) Word {
	return ctl.Field() | Addr(addr)
}

func (ci ControlInst) Opcode() Opcode {
	return Opcode(ci.word & (OPCODE_MASK | FIELD_MASK))
}

// Control returns the control sub-operation.
func (ci ControlInst) Control() Control {
	return Control(ci.word.field())
}

func (ci ControlInst) String() string {
	return fmt.Sprintf("%v %v", ci.Opcode(), ci.operands())
}

// ScaledInst is an arithmetic or oscillator instruction carrying a scale code.
type ScaledInst struct{ view }

// MakeScaled builds a scaled instruction.
func MakeScaled(op Opcode, scale ScaleCode, addr int) Word {
	return (op.Word() & OPCODE_MASK) | scale.Field() | Addr(addr)
}

func (si ScaledInst) Opcode() Opcode {
	return Opcode(si.word & OPCODE_MASK)
}

// Scale returns the scale code.
func (si ScaledInst) Scale() ScaleCode {
	return ScaleCode(si.word.field())
}

func (si ScaledInst) String() string {
	return fmt.Sprintf("%v %v %v", si.Opcode(), si.Scale(), si.operands())
}

// ShapedInst is a pulse or triangle instruction whose bits 8-11 select
// the waveform shape.
type ShapedInst struct{ view }

// MakeShaped builds a shaped instruction.
func MakeShaped(op Opcode, shape Shape, addr int) Word {
	return (op.Word() & OPCODE_MASK) | shape.Field() | Addr(addr)
}

// Opcode returns the named shape variant (INST_SQUARE, INST_TRIANGLE) when
// the shape selects one, otherwise the bare top nibble (INST_PULSE).
func (si ShapedInst) Opcode() Opcode {
	variant := Opcode(si.word & (OPCODE_MASK | FIELD_MASK))
	if len(Lookup(variant)) != 0 {
		return variant
	}
	return Opcode(si.word & OPCODE_MASK)
}

// Shape returns the waveform shape.
func (si ShapedInst) Shape() Shape {
	return Shape(si.word.field())
}

func (si ShapedInst) String() string {
	op := si.Opcode()
	if Word(op)&FIELD_MASK != 0 {
		return fmt.Sprintf("%v %v", op, si.operands())
	}
	return fmt.Sprintf("%v 0x%x %v", op, si.Shape(), si.operands())
}

// OutputInst writes to the left or right stereo output.
type OutputInst struct{ view }

// MakeOutput builds an output instruction.
func MakeOutput(op Opcode, ch Channel, addr int) Word {
	return (op.Word() & OPCODE_MASK) | ch.Field() | Addr(addr)
}

// Opcode returns the channel-specific opcode, INST_*_LEFT or INST_*_RIGHT.
func (oi OutputInst) Opcode() Opcode {
	return Opcode(oi.word&OPCODE_MASK) | Opcode(oi.Channel().Field())
}

// Channel returns the channel selected by bit 8.
func (oi OutputInst) Channel() Channel {
	return Channel(oi.word.field() & 1)
}

// Extra returns bits 9-11, which no output opcode defines.
func (oi OutputInst) Extra() int {
	return oi.word.field() >> 1
}

func (oi OutputInst) String() string {
	if extra := oi.Extra(); extra != 0 {
		return fmt.Sprintf("%v ~0x%x %v", oi.Opcode(), extra, oi.operands())
	}
	return fmt.Sprintf("%v %v", oi.Opcode(), oi.operands())
}

// ReservedInst has an opcode nibble (0xe, 0xf) with no defined meaning.
type ReservedInst struct{ view }

func (ri ReservedInst) Opcode() Opcode {
	return Opcode(ri.word & OPCODE_MASK)
}

// Field returns bits 8-11 uninterpreted.
func (ri ReservedInst) Field() int {
	return ri.word.field()
}

func (ri ReservedInst) String() string {
	return fmt.Sprintf("%v 0x%x %v", ri.Opcode(), ri.Field(), ri.operands())
}
