package trig

import (
	"errors"
	"fmt"
	gomath "math"
)

// ErrUnknownIdentity is returned for identity names outside Identities()
var ErrUnknownIdentity = errors.New("trig: unknown identity")

// IdentityTolerance is the relative tolerance for identity checks
const IdentityTolerance = 1e-9

type identityDef struct {
	expression string
	sides      func(rad float64) (left, right float64)
}

var identityOrder = []Identity{
	IdentityPythagorean,
	IdentityTangentQuotient,
	IdentityDoubleAngleSine,
	IdentityDoubleAngleCosine,
	IdentityCofunction,
	IdentityEvenOdd,
}

var identities = map[Identity]identityDef{
	IdentityPythagorean: {
		expression: "sin²θ + cos²θ = 1",
		sides: func(rad float64) (float64, float64) {
			s, c := gomath.Sincos(rad)
			return s*s + c*c, 1
		},
	},
	IdentityTangentQuotient: {
		expression: "tan θ = sin θ / cos θ",
		sides: func(rad float64) (float64, float64) {
			s, c := gomath.Sincos(rad)
			return gomath.Tan(rad), s / c
		},
	},
	IdentityDoubleAngleSine: {
		expression: "sin 2θ = 2 sin θ cos θ",
		sides: func(rad float64) (float64, float64) {
			s, c := gomath.Sincos(rad)
			return gomath.Sin(2 * rad), 2 * s * c
		},
	},
	IdentityDoubleAngleCosine: {
		expression: "cos 2θ = cos²θ − sin²θ",
		sides: func(rad float64) (float64, float64) {
			s, c := gomath.Sincos(rad)
			return gomath.Cos(2 * rad), c*c - s*s
		},
	},
	IdentityCofunction: {
		expression: "sin(90° − θ) = cos θ",
		sides: func(rad float64) (float64, float64) {
			return gomath.Sin(gomath.Pi/2 - rad), gomath.Cos(rad)
		},
	},
	IdentityEvenOdd: {
		expression: "cos(−θ) = cos θ",
		sides: func(rad float64) (float64, float64) {
			return gomath.Cos(-rad), gomath.Cos(rad)
		},
	},
}

// Identities lists the supported identities in display order
func Identities() []Identity {
	out := make([]Identity, len(identityOrder))
	copy(out, identityOrder)
	return out
}

// VerifyIdentity evaluates both sides of an identity at the given angle
func VerifyIdentity(name Identity, angleDegrees float64) (IdentityCheck, error) {
	def, ok := identities[name]
	if !ok {
		return IdentityCheck{}, fmt.Errorf("%w: %q", ErrUnknownIdentity, name)
	}

	left, right := def.sides(Radians(angleDegrees))
	diff := gomath.Abs(left - right)
	scale := gomath.Max(1, gomath.Max(gomath.Abs(left), gomath.Abs(right)))

	return IdentityCheck{
		Identity:     name,
		Expression:   def.expression,
		AngleDegrees: angleDegrees,
		Left:         left,
		Right:        right,
		Difference:   diff,
		Holds:        diff <= IdentityTolerance*scale,
	}, nil
}

// VerifyAll checks every identity at the given angle
func VerifyAll(angleDegrees float64) []IdentityCheck {
	checks := make([]IdentityCheck, 0, len(identityOrder))
	for _, name := range identityOrder {
		check, _ := VerifyIdentity(name, angleDegrees)
		checks = append(checks, check)
	}
	return checks
}
