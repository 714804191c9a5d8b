package inst

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeValues(t *testing.T) {
	assert := assert.New(t)

	table := map[string]uint16{
		"INST_NOP":            0x0000,
		"INST_ENABLE":         0x0200,
		"INST_DISABLE":        0x0300,
		"INST_PHASE_UPDATE":   0x1000,
		"INST_CONTRIBUTE":     0x2000,
		"INST_MADD_SCALE2":    0x3000,
		"INST_APPROACH":       0x4000,
		"INST_PULSE":          0x5000,
		"INST_SQUARE":         0x5d00,
		"INST_PULSE_IMM":      0x6000,
		"INST_SAWTOOTH":       0x0000,
		"INST_TRIANGLE":       0x7c00,
		"INST_SINA2":          0x8000,
		"INST_SIN":            0x9000,
		"INST_NOISE_UPDATE":   0xa000,
		"INST_OUTPUT":         0xb000,
		"INST_OUTPUT_LEFT":    0xb000,
		"INST_OUTPUT_RIGHT":   0xb100,
		"INST_OUTPUT_A":       0xc000,
		"INST_OUTPUT_A_LEFT":  0xc000,
		"INST_OUTPUT_A_RIGHT": 0xc100,
		"INST_LOOP_UPDATE":    0xd000,
	}

	catalog := maps.Collect(Catalog())
	assert.Equal(len(table), len(catalog))
	for name, value := range table {
		op, ok := catalog[name]
		if assert.True(ok, name) {
			assert.Equal(value, uint16(op), name)
		}
	}
}

func TestOpcodeFieldReuse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(INST_OUTPUT_LEFT|0x0100, INST_OUTPUT_RIGHT)
	assert.Equal(INST_OUTPUT_A_LEFT|0x0100, INST_OUTPUT_A_RIGHT)
	assert.Equal(INST_OUTPUT, INST_OUTPUT_LEFT)
	assert.Equal(INST_OUTPUT_A, INST_OUTPUT_A_LEFT)
	assert.Equal(INST_PULSE|0x0d00, INST_SQUARE)
	assert.Equal(INST_SQUARE.Word(), INST_PULSE.Word()|SHAPE_SQUARE.Field())
	assert.Equal(INST_OUTPUT_RIGHT.Word(), INST_OUTPUT.Word()|CHANNEL_RIGHT.Field())
	assert.Equal(INST_ENABLE.Word(), CONTROL_ENABLE.Field())
	assert.Equal(INST_DISABLE.Word(), CONTROL_DISABLE.Field())
}

func TestOpcodeNopSawtooth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(INST_NOP, INST_SAWTOOTH)

	var names []string
	for _, entry := range Lookup(INST_NOP) {
		names = append(names, entry.Name)
	}
	assert.Equal([]string{"INST_NOP", "INST_SAWTOOTH"}, names)
	assert.Equal("nop/sawtooth", INST_NOP.String())
	assert.Equal("nop/sawtooth", INST_SAWTOOTH.String())
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	table := map[Opcode]string{
		INST_ENABLE:         "enable",
		INST_SIN:            "sin",
		INST_SQUARE:         "square",
		INST_PULSE:          "pulse",
		INST_TRIANGLE:       "triangle",
		INST_OUTPUT_LEFT:    "output_left",
		INST_OUTPUT_A_RIGHT: "output_a_right",
		INST_LOOP_UPDATE:    "loop_update",
		Opcode(0xe000):      "op_e000",
		Opcode(0x7000):      "op_7000",
	}

	for op, str := range table {
		assert.Equal(str, op.String())
	}
}

func TestOpcodeClass(t *testing.T) {
	assert := assert.New(t)

	table := map[Opcode]CodeClass{
		INST_NOP:          CLASS_CONTROL,
		INST_ENABLE:       CLASS_CONTROL,
		INST_PHASE_UPDATE: CLASS_SCALED,
		INST_APPROACH:     CLASS_SCALED,
		INST_PULSE:        CLASS_SHAPED,
		INST_SQUARE:       CLASS_SHAPED,
		INST_PULSE_IMM:    CLASS_SCALED,
		INST_TRIANGLE:     CLASS_SHAPED,
		INST_SIN:          CLASS_SCALED,
		INST_OUTPUT_RIGHT: CLASS_OUTPUT,
		INST_OUTPUT_A:     CLASS_OUTPUT,
		INST_LOOP_UPDATE:  CLASS_SCALED,
		Opcode(0xf000):    CLASS_RESERVED,
	}

	for op, class := range table {
		assert.Equal(class, op.Class(), op.String())
	}

	assert.Equal("scaled", CLASS_SCALED.String())
	assert.Equal("CodeClass(9)", CodeClass(9).String())
}

func TestParseOpcode(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Opcode{
		"sin":               INST_SIN,
		"SQUARE":            INST_SQUARE,
		"INST_OUTPUT_RIGHT": INST_OUTPUT_RIGHT,
		"inst_output_a":     INST_OUTPUT_A,
		"Sawtooth":          INST_SAWTOOTH,
	}

	for name, expected := range table {
		op, err := ParseOpcode(name)
		assert.NoError(err, name)
		assert.Equal(expected, op, name)
	}

	_, err := ParseOpcode("cos")
	assert.True(errors.Is(err, ErrOpcodeUnknown))
	assert.Equal(ErrOpcodeName("cos"), err)
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.Collect(Defines())
	assert.Len(defines, 24)
	assert.Equal(Word(0x0f00), defines["SCALE_MINUS_FOUR"])
	assert.Equal(Word(0x0000), defines["SCALE_ZERO"])
	assert.Equal(Word(0x5d00), defines["INST_SQUARE"])
	assert.Equal(Word(0xc100), defines["INST_OUTPUT_A_RIGHT"])

	// Stop early.
	count := 0
	for range Defines() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}

func TestChannelString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("left", CHANNEL_LEFT.String())
	assert.Equal("right", CHANNEL_RIGHT.String())
	assert.Equal("nop/sawtooth", CONTROL_NONE.String())
	assert.Equal("disable", CONTROL_DISABLE.String())
}
