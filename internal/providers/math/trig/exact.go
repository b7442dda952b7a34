package trig

import (
	"errors"
	"fmt"
	gomath "math"
	"regexp"
	"strconv"
)

var (
	// ErrUndefinedValue is returned when converting the "undefined" tangent
	ErrUndefinedValue = errors.New("trig: exact value is undefined")
	// ErrInvalidExact is returned for strings outside the exact-value grammar
	ErrInvalidExact = errors.New("trig: invalid exact value")
)

// [-](n | √n)[/d]
var exactPattern = regexp.MustCompile(`^(-)?(?:(\d+)|√(\d+))(?:/(\d+))?$`)

// ParseExact converts an exact form such as "-√3/2" back to a float64
func ParseExact(s string) (float64, error) {
	if s == Undefined {
		return 0, ErrUndefinedValue
	}
	m := exactPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidExact, s)
	}

	var num float64
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		num = float64(n)
	} else {
		n, _ := strconv.Atoi(m[3])
		num = gomath.Sqrt(float64(n))
	}

	if m[4] != "" {
		d, _ := strconv.Atoi(m[4])
		if d == 0 {
			return 0, fmt.Errorf("%w: zero denominator in %q", ErrInvalidExact, s)
		}
		num /= float64(d)
	}

	if m[1] == "-" {
		num = -num
	}
	return num, nil
}
