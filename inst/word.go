package inst

import (
	"fmt"
)

// Word is a single 16-bit instruction word.
type Word uint16

// Bit-field layout of a Word.
const (
	ADDR_MASK     = Word(0x007f) // Address, bits 0-6.
	RESERVED_MASK = Word(0x0080) // Reserved, bit 7.
	FIELD_MASK    = Word(0x0f00) // Scale code or channel, bits 8-11.
	OPCODE_MASK   = Word(0xf000) // Opcode top nibble, bits 12-15.

	FIELD_SHIFT  = 8
	OPCODE_SHIFT = 12

	ADDR_LIMIT  = 127 // Largest encodable address.
	FIELD_LIMIT = 15  // Largest encodable scale code.
)

// Addr places the low 7 bits of a into the address field.
func Addr(a int) Word {
	return Word(a & 127)
}

// AddrChecked places a into the address field, or fails if a is not in 0..127.
func AddrChecked(a int) (w Word, err error) {
	if a < 0 || a > ADDR_LIMIT {
		err = &ErrRange{Field: "address", Value: a, Min: 0, Max: ADDR_LIMIT}
		return
	}

	w = Addr(a)
	return
}

// ScaleField places the low 4 bits of x into bits 8-11.
func ScaleField(x int) Word {
	return Word((x & 15) << FIELD_SHIFT)
}

// Scale places the scale code for 2^n into bits 8-11.
// Must have -12 <= n <= 2; n = 2 gives the -4 sentinel.
func Scale(n int) Word {
	return ScaleFromExponent(n).Field()
}

// ChangeScaleCode returns w with bits 8-11 replaced by the low 4 bits of x.
func (w Word) ChangeScaleCode(x int) Word {
	return (w &^ FIELD_MASK) | ScaleField(x)
}

// ChangeScale returns w with bits 8-11 replaced by the scale code for 2^n.
func (w Word) ChangeScale(n int) Word {
	return w.ChangeScaleCode(int(ScaleFromExponent(n)))
}

// Address returns the address field.
func (w Word) Address() int {
	return int(w & ADDR_MASK)
}

// Reserved returns true if the reserved bit 7 is set.
func (w Word) Reserved() bool {
	return (w & RESERVED_MASK) != 0
}

// Opcode returns the opcode bits (12-15) of the word.
func (w Word) Opcode() Opcode {
	return Opcode(w & OPCODE_MASK)
}

// Class returns the opcode class that decides the meaning of bits 8-11.
func (w Word) Class() CodeClass {
	return classOf[(w>>OPCODE_SHIFT)&0xf]
}

// field returns the raw content of bits 8-11.
// It is unexported so callers go through the per-class views.
func (w Word) field() int {
	return int((w & FIELD_MASK) >> FIELD_SHIFT)
}

// String returns the hexadecimal form of the word.
func (w Word) String() string {
	return fmt.Sprintf("0x%04x", uint16(w))
}
