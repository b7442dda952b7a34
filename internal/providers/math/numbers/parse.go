package numbers

import (
	"errors"
	"fmt"
	gomath "math"
	"regexp"
	"strconv"
	"strings"
)

const decimal = `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`

var (
	realPattern          = regexp.MustCompile(`^[+-]?` + decimal + `$`)
	pureImaginaryPattern = regexp.MustCompile(`^([+-]?)(` + decimal + `)?[iI]$`)
	complexPattern       = regexp.MustCompile(`^([+-]?` + decimal + `)\s*([+-])\s*(` + decimal + `)?[iI]$`)
)

// Parse reads a free-form numeric string. Failures are reported on the
// returned value, never as a panic.
func Parse(raw string) NumberInput {
	in := NumberInput{Raw: raw}
	s := strings.TrimSpace(raw)
	if s == "" {
		return in.fail(ErrorEmptyInput, "Input is empty")
	}

	if re, im, text, ok := parseComplex(s); ok {
		in.Real, in.Imaginary, in.realText = &re, &im, text
		in.Valid = true
		return in
	}

	if v, ok := parseSpecial(s); ok {
		in.Real = &v
		in.Valid = true
		return in
	}

	if strings.ContainsAny(s, "iI") {
		return in.fail(ErrorUnparseableFormat, fmt.Sprintf("Invalid complex number format: %q", s))
	}

	v, ok := parseDecimal(s)
	if !ok {
		return in.fail(ErrorUnparseableFormat, fmt.Sprintf("Cannot parse %q as a number", s))
	}
	in.Real, in.realText = &v, s
	in.Valid = true
	return in
}

func (n NumberInput) fail(kind ErrorKind, msg string) NumberInput {
	n.Valid = false
	n.Error = msg
	n.ErrorKind = kind
	return n
}

func parseComplex(s string) (re, im float64, realText string, ok bool) {
	if m := pureImaginaryPattern.FindStringSubmatch(s); m != nil {
		im, ok = coefficient(m[1], m[2])
		return 0, im, "0", ok
	}
	if m := complexPattern.FindStringSubmatch(s); m != nil {
		re, ok = parseDecimal(m[1])
		if !ok {
			return 0, 0, "", false
		}
		im, ok = coefficient(m[2], m[3])
		return re, im, m[1], ok
	}
	return 0, 0, "", false
}

// coefficient resolves an imaginary coefficient; a missing magnitude means 1.
func coefficient(sign, magnitude string) (float64, bool) {
	v := 1.0
	if magnitude != "" {
		var ok bool
		if v, ok = parseDecimal(magnitude); !ok {
			return 0, false
		}
	}
	if sign == "-" {
		v = -v
	}
	return v, true
}

func parseSpecial(s string) (float64, bool) {
	switch strings.ToLower(s) {
	case "infinity", "+infinity", "∞", "+∞":
		return gomath.Inf(1), true
	case "-infinity", "-∞":
		return gomath.Inf(-1), true
	}
	return 0, false
}

// parseDecimal accepts plain decimal notation only. Overflow yields ±Inf.
func parseDecimal(s string) (float64, bool) {
	if !realPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
