package inst

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/ucsynth/internal"
)

// Opcode is an opcode constant, ready to be or'd with a field and an address.
type Opcode uint16

// Opcode catalog. These values are the wire format.
//
// INST_NOP and INST_SAWTOOTH share the all-zero pattern; nothing in the word
// tells them apart.
const (
	INST_NOP            = Opcode(0x0000)
	INST_ENABLE         = Opcode(0x0200)
	INST_DISABLE        = Opcode(0x0300)
	INST_PHASE_UPDATE   = Opcode(0x1000)
	INST_CONTRIBUTE     = Opcode(0x2000)
	INST_MADD_SCALE2    = Opcode(0x3000)
	INST_APPROACH       = Opcode(0x4000)
	INST_SQUARE         = Opcode(0x5d00)
	INST_PULSE          = Opcode(0x5000)
	INST_PULSE_IMM      = Opcode(0x6000)
	INST_SAWTOOTH       = Opcode(0x0000)
	INST_TRIANGLE       = Opcode(0x7c00)
	INST_SINA2          = Opcode(0x8000)
	INST_SIN            = Opcode(0x9000)
	INST_NOISE_UPDATE   = Opcode(0xa000)
	INST_OUTPUT         = Opcode(0xb000)
	INST_OUTPUT_LEFT    = Opcode(0xb000)
	INST_OUTPUT_RIGHT   = Opcode(0xb100)
	INST_OUTPUT_A       = Opcode(0xc000)
	INST_OUTPUT_A_LEFT  = Opcode(0xc000)
	INST_OUTPUT_A_RIGHT = Opcode(0xc100)
	INST_LOOP_UPDATE    = Opcode(0xd000)
)

// CatalogEntry is a named opcode constant.
type CatalogEntry struct {
	Name   string // Constant name, e.g. INST_SIN.
	Opcode Opcode // Constant value.
	Base   bool   // Set for channel-less bases that alias the left variant.
}

// catalog is in generated header order.
var catalog = []CatalogEntry{
	{"INST_NOP", INST_NOP, false},
	{"INST_ENABLE", INST_ENABLE, false},
	{"INST_DISABLE", INST_DISABLE, false},
	{"INST_PHASE_UPDATE", INST_PHASE_UPDATE, false},
	{"INST_CONTRIBUTE", INST_CONTRIBUTE, false},
	{"INST_MADD_SCALE2", INST_MADD_SCALE2, false},
	{"INST_APPROACH", INST_APPROACH, false},
	{"INST_SQUARE", INST_SQUARE, false},
	{"INST_PULSE", INST_PULSE, false},
	{"INST_PULSE_IMM", INST_PULSE_IMM, false},
	{"INST_SAWTOOTH", INST_SAWTOOTH, false},
	{"INST_TRIANGLE", INST_TRIANGLE, false},
	{"INST_SINA2", INST_SINA2, false},
	{"INST_SIN", INST_SIN, false},
	{"INST_NOISE_UPDATE", INST_NOISE_UPDATE, false},
	{"INST_OUTPUT", INST_OUTPUT, true},
	{"INST_OUTPUT_LEFT", INST_OUTPUT_LEFT, false},
	{"INST_OUTPUT_RIGHT", INST_OUTPUT_RIGHT, false},
	{"INST_OUTPUT_A", INST_OUTPUT_A, true},
	{"INST_OUTPUT_A_LEFT", INST_OUTPUT_A_LEFT, false},
	{"INST_OUTPUT_A_RIGHT", INST_OUTPUT_A_RIGHT, false},
	{"INST_LOOP_UPDATE", INST_LOOP_UPDATE, false},
}

// Catalog returns an iterator over the named opcodes, in header order.
func Catalog() iter.Seq2[string, Opcode] {
	return func(yield func(name string, op Opcode) bool) {
		for _, entry := range catalog {
			if !yield(entry.Name, entry.Opcode) {
				return
			}
		}
	}
}

// Defines returns an iterator over every named constant as a word.
func Defines() iter.Seq2[string, Word] {
	scales := map[string]Word{
		"SCALE_ZERO":       SCALE_ZERO.Field(),
		"SCALE_MINUS_FOUR": SCALE_MINUS_FOUR.Field(),
	}

	var opcodes iter.Seq2[string, Word] = func(yield func(name string, w Word) bool) {
		for name, op := range Catalog() {
			if !yield(name, op.Word()) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(opcodes, maps.All(scales))
}

// Lookup returns every catalog entry whose value is exactly op.
func Lookup(op Opcode) (entries []CatalogEntry) {
	for _, entry := range catalog {
		if entry.Opcode == op {
			entries = append(entries, entry)
		}
	}

	return
}

// ParseOpcode resolves a catalog name, with or without the INST_ prefix,
// in any letter case.
func ParseOpcode(name string) (op Opcode, err error) {
	key := strings.ToUpper(name)
	if !strings.HasPrefix(key, "INST_") {
		key = "INST_" + key
	}

	index := slices.IndexFunc(catalog, func(entry CatalogEntry) bool {
		return entry.Name == key
	})
	if index < 0 {
		err = ErrOpcodeName(name)
		return
	}

	op = catalog[index].Opcode
	return
}

// Word returns the opcode as an instruction word with zero fields.
func (op Opcode) Word() Word {
	return Word(op)
}

// String returns the mnemonic of the opcode.
//
// A pattern shared by several names (0x0000 is both nop and sawtooth) lists
// all of them separated by '/'. A pattern with no name is shown in hex.
func (op Opcode) String() string {
	var names []string
	for _, entry := range Lookup(op) {
		if entry.Base {
			continue
		}
		names = append(names, strings.ToLower(strings.TrimPrefix(entry.Name, "INST_")))
	}

	if len(names) == 0 {
		return fmt.Sprintf("op_%04x", uint16(op))
	}

	return strings.Join(names, "/")
}

// CodeClass is the interpretation of bits 8-11 selected by the opcode.
type CodeClass int

const (
	CLASS_CONTROL  = CodeClass(0) // Control sub-operation.
	CLASS_SCALED   = CodeClass(1) // Scale code.
	CLASS_SHAPED   = CodeClass(2) // Waveform shape.
	CLASS_OUTPUT   = CodeClass(3) // Channel select in bit 8.
	CLASS_RESERVED = CodeClass(4) // Undefined opcode.
)

var classNames = [...]string{
	CLASS_CONTROL:  "control",
	CLASS_SCALED:   "scaled",
	CLASS_SHAPED:   "shaped",
	CLASS_OUTPUT:   "output",
	CLASS_RESERVED: "reserved",
}

func (cc CodeClass) String() string {
	if cc < 0 || int(cc) >= len(classNames) {
		return fmt.Sprintf("CodeClass(%d)", int(cc))
	}

	return classNames[cc]
}

// classOf maps the opcode top nibble to its class.
var classOf = [16]CodeClass{
	0x0: CLASS_CONTROL,
	0x1: CLASS_SCALED, // phase_update
	0x2: CLASS_SCALED, // contribute
	0x3: CLASS_SCALED, // madd_scale2
	0x4: CLASS_SCALED, // approach
	0x5: CLASS_SHAPED, // pulse, square
	0x6: CLASS_SCALED, // pulse_imm
	0x7: CLASS_SHAPED, // triangle
	0x8: CLASS_SCALED, // sina2
	0x9: CLASS_SCALED, // sin
	0xa: CLASS_SCALED, // noise_update
	0xb: CLASS_OUTPUT,
	0xc: CLASS_OUTPUT,
	0xd: CLASS_SCALED, // loop_update
	0xe: CLASS_RESERVED,
	0xf: CLASS_RESERVED,
}

// Class returns the class of the opcode's top nibble.
func (op Opcode) Class() CodeClass {
	return Word(op).Class()
}

// Channel selects the stereo output of the output opcodes.
type Channel int

const (
	CHANNEL_LEFT  = Channel(0)
	CHANNEL_RIGHT = Channel(1)
)

// Field returns the channel placed in bit 8.
func (ch Channel) Field() Word {
	return Word(ch&1) << FIELD_SHIFT
}

func (ch Channel) String() string {
	if ch&1 == CHANNEL_RIGHT {
		return "right"
	}
	return "left"
}

// Shape is the waveform parameter of the pulse and triangle opcodes.
type Shape uint8

const (
	SHAPE_SQUARE   = Shape(0xd) // On INST_PULSE, gives INST_SQUARE.
	SHAPE_TRIANGLE = Shape(0xc) // On the triangle nibble, gives INST_TRIANGLE.
)

// Field returns the shape placed in bits 8-11.
func (sh Shape) Field() Word {
	return ScaleField(int(sh))
}

// Control is the sub-operation of the zero opcode nibble.
type Control uint8

const (
	CONTROL_NONE    = Control(0x0) // nop (or sawtooth)
	CONTROL_ENABLE  = Control(0x2)
	CONTROL_DISABLE = Control(0x3)
)

// Field returns the control sub-operation placed in bits 8-11.
func (ctl Control) Field() Word {
	return ScaleField(int(ctl))
}

func (ctl Control) String() string {
	return Opcode(ctl.Field()).String()
}
