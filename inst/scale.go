package inst

import (
	"fmt"
	"math"
)

// ScaleCode is the 4-bit scale selector of arithmetic and oscillator opcodes.
//
// Code 0 is an exact zero, codes 1-14 are 2^(code-13), and code 15 is -4.
type ScaleCode uint8

const (
	SCALE_ZERO       = ScaleCode(0)  // Scale by 0.
	SCALE_MINUS_FOUR = ScaleCode(15) // Scale by -4.

	SCALE_EXP_MIN  = -12 // Smallest power of two.
	SCALE_EXP_MAX  = 1   // Largest power of two.
	SCALE_EXP_BIAS = 13  // Code = exponent + bias.
)

// ScaleFromExponent returns the scale code for 2^n.
// Must have -12 <= n <= 2; n = 2 gives SCALE_MINUS_FOUR, not 4.
// Other values of n are masked, not rejected.
func ScaleFromExponent(n int) ScaleCode {
	return ScaleCode((n + SCALE_EXP_BIAS) & 15)
}

// ScaleFromExponentChecked is ScaleFromExponent with a range check on n.
func ScaleFromExponentChecked(n int) (code ScaleCode, err error) {
	if n < SCALE_EXP_MIN || n > SCALE_EXP_MAX+1 {
		err = &ErrRange{Field: "scale exponent", Value: n, Min: SCALE_EXP_MIN, Max: SCALE_EXP_MAX + 1}
		return
	}

	code = ScaleFromExponent(n)
	return
}

// ScaleCodeChecked returns x as a scale code, or fails if x is not in 0..15.
func ScaleCodeChecked(x int) (code ScaleCode, err error) {
	if x < 0 || x > FIELD_LIMIT {
		err = &ErrRange{Field: "scale code", Value: x, Min: 0, Max: FIELD_LIMIT}
		return
	}

	code = ScaleCode(x)
	return
}

// Field returns the code placed in bits 8-11.
func (sc ScaleCode) Field() Word {
	return ScaleField(int(sc))
}

// Exponent returns n for a code meaning 2^n.
// ok is false for SCALE_ZERO and SCALE_MINUS_FOUR.
func (sc ScaleCode) Exponent() (n int, ok bool) {
	code := int(sc & 15)
	if code == int(SCALE_ZERO) || code == int(SCALE_MINUS_FOUR) {
		return
	}

	return code - SCALE_EXP_BIAS, true
}

// Factor returns the multiplier denoted by the code.
func (sc ScaleCode) Factor() float64 {
	switch sc & 15 {
	case SCALE_ZERO:
		return 0
	case SCALE_MINUS_FOUR:
		return -4
	}

	n, _ := sc.Exponent()
	return math.Ldexp(1, n)
}

// String returns the factor as 0, -4, or 2^n.
func (sc ScaleCode) String() string {
	switch sc & 15 {
	case SCALE_ZERO:
		return "0"
	case SCALE_MINUS_FOUR:
		return "-4"
	}

	n, _ := sc.Exponent()
	return fmt.Sprintf("2^%d", n)
}
