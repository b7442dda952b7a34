package numbers

import (
	gomath "math"
	"math/big"
	"strconv"
	"strings"
)

// maxExactExponent bounds the exponents expanded with math/big; anything
// larger falls back to the float64 test.
const maxExactExponent = 400

// Classify parses raw and places the value in the nested number sets
// (natural ⊂ integer ⊂ rational ⊂ real, complex as a disjoint branch).
func Classify(raw string) NumberClassification {
	in := Parse(raw)
	c := NumberClassification{
		Input:          in,
		Representation: KindUnknown,
		Warnings:       []string{},
	}
	if !in.Valid {
		c.Error = in.Error
		c.ErrorKind = in.ErrorKind
		return c
	}
	c.Valid = true

	if in.Imaginary != nil && *in.Imaginary != 0 {
		c.IsComplex = true
		c.Representation = KindComplex
		return c
	}

	v := *in.Real
	c.IsReal = true
	if gomath.IsInf(v, 0) {
		c.Representation = KindFloat
		c.Warnings = append(c.Warnings, WarningInfinity)
		return c
	}

	c.IsRational = true
	c.IsInteger = isInteger(in.realText, v)
	c.IsNatural = c.IsInteger && v > 0

	if gomath.Abs(v) > MaxSafeInteger {
		c.Warnings = append(c.Warnings, WarningUnsafeInteger)
	}

	switch {
	case c.IsInteger && gomath.Abs(v) <= MaxSafeInteger:
		c.Representation = KindInt
	case fractionalDigits(in.realText) > HighPrecisionDigits:
		c.Representation = KindHighPrecisionDecimal
		c.Warnings = append(c.Warnings, WarningHighPrecision)
	default:
		c.Representation = KindFloat
	}
	return c
}

// isInteger tests the literal rather than the rounded float64, so
// "1.0000000000000000001" is not an integer even though it parses to 1.
func isInteger(text string, v float64) bool {
	if text == "" || exponent(text) > maxExactExponent || exponent(text) < -maxExactExponent {
		return v == gomath.Trunc(v)
	}
	r, ok := new(big.Rat).SetString(strings.TrimPrefix(text, "+"))
	if !ok {
		return v == gomath.Trunc(v)
	}
	return r.IsInt()
}

func exponent(text string) int {
	idx := strings.IndexAny(text, "eE")
	if idx < 0 {
		return 0
	}
	exp, err := strconv.Atoi(text[idx+1:])
	if err != nil {
		// out of int range; treat as huge
		return gomath.MaxInt32
	}
	return exp
}

// fractionalDigits counts the digits typed after the decimal point
func fractionalDigits(text string) int {
	if idx := strings.IndexAny(text, "eE"); idx >= 0 {
		text = text[:idx]
	}
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	return len(text) - dot - 1
}
