// Package statistics backs the hypothesis testing simulator on the Statistics page.
//
// ZTest and TTest evaluate a one-sample test from summary statistics. Simulate
// repeats the t-test over samples drawn from a known normal population so the
// widget can show how often the null is rejected at a chosen alpha.
package statistics

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
)

var (
	ErrInvalidSample = errors.New("statistics: invalid sample")
	ErrInvalidAlpha  = errors.New("statistics: alpha must be in (0, 1)")
	ErrTooManyTrials = errors.New("statistics: too many trials")
	ErrUnknownTail   = errors.New("statistics: unknown tail")
	ErrOverflow      = fmt.Errorf("statistics: %w", common.ErrOverflow)
)

// Tail selects the alternative hypothesis
type Tail string

const (
	TwoTailed   Tail = "two"
	LeftTailed  Tail = "left"
	RightTailed Tail = "right"
)

// Valid reports whether t names a known alternative
func (t Tail) Valid() bool {
	switch t {
	case TwoTailed, LeftTailed, RightTailed:
		return true
	}
	return false
}
