package trig

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"
)

// ErrInvalidAngle is returned for angle text that is missing, non-numeric or non-finite
var ErrInvalidAngle = errors.New("trig: invalid angle")

// ParseAngle reads a finite angle in degrees from text
func ParseAngle(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: angle is required", ErrInvalidAngle)
	}
	angle, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAngle, raw)
	}
	if gomath.IsNaN(angle) || gomath.IsInf(angle, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAngle, raw)
	}
	return angle, nil
}
