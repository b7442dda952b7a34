package trig

import (
	gomath "math"
)

// Radians converts degrees to radians. The factor is folded first so any
// finite angle gives a finite result.
func Radians(degrees float64) float64 {
	return degrees * (gomath.Pi / 180)
}

// Degrees converts radians to degrees. Above ~3.1e306 rad the result is +-Inf.
func Degrees(radians float64) float64 {
	return radians * (180 / gomath.Pi)
}

// Normalize maps any finite angle into [0, 360)
func Normalize(degrees float64) float64 {
	n := gomath.Mod(degrees, 360)
	if n < 0 {
		n += 360
	}
	if n >= 360 || n == 0 {
		// -1e-20 + 360 rounds to 360; -0 becomes 0
		return 0
	}
	return n
}

// Quadrant returns 1-4 for a normalized angle, axis angles joining the
// quadrant they open.
func Quadrant(normalized float64) int {
	q := int(normalized/90) + 1
	if q > 4 {
		return 4
	}
	return q
}

// ReferenceAngle returns the acute angle between the terminal ray and the x-axis
func ReferenceAngle(normalized float64) float64 {
	switch Quadrant(normalized) {
	case 1:
		return normalized
	case 2:
		return 180 - normalized
	case 3:
		return normalized - 180
	default:
		return 360 - normalized
	}
}

// Evaluate computes the unit circle values for an angle in degrees.
// Non-finite input yields NaN values and quadrant 0.
func Evaluate(angleDegrees float64) TrigEvaluation {
	rad := Radians(angleDegrees)
	sin, cos := gomath.Sincos(rad)

	e := TrigEvaluation{
		AngleDegrees: angleDegrees,
		Radians:      rad,
		Sine:         sin,
		Cosine:       cos,
		Tangent:      sin / cos,
		Point:        Point{X: cos, Y: sin},
	}

	if gomath.IsNaN(angleDegrees) || gomath.IsInf(angleDegrees, 0) {
		e.NormalizedDegrees = gomath.NaN()
		e.ReferenceAngleDegrees = gomath.NaN()
		return e
	}

	n := Normalize(angleDegrees)
	e.NormalizedDegrees = n
	e.Quadrant = Quadrant(n)
	e.OnAxis = gomath.Mod(n, 90) == 0
	e.ReferenceAngleDegrees = ReferenceAngle(n)

	if special, ok := lookupSpecial(n); ok {
		sine, cosine, tangent := special.Sine, special.Cosine, special.Tangent
		e.ExactSine = &sine
		e.ExactCosine = &cosine
		e.ExactTangent = &tangent
	}
	return e
}
