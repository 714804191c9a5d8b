// Package inst encodes and decodes the 16-bit instruction words of the
// ucsynth fixed-point oscillator core.
//
// An instruction word packs three fields:
//
//	bit:    15 14 13 12 | 11 10  9  8 |  7 |  6  5  4  3  2  1  0
//	field:  [   opcode  ]  [scale/chan]  R  [      address      ]
//
// The address selects one of 128 engine slots. Bits 8-11 carry a scale code
// for arithmetic and oscillator opcodes, a channel select for the output
// opcodes, a waveform shape for the pulse and triangle opcodes, and a control
// sub-operation for the zero opcode. Bit 7 is reserved.
//
// Every function in this package is pure. Out-of-range inputs to the masking
// helpers (Addr, ScaleField, Scale, ChangeScaleCode, ChangeScale) are silently
// truncated to the field width; the Checked variants report a range error
// instead.
package inst
