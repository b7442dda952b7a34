package trig

// Point is a point on the unit circle
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrigEvaluation is everything the unit circle explorer shows for one angle
type TrigEvaluation struct {
	AngleDegrees          float64 `json:"angle_degrees"`
	NormalizedDegrees     float64 `json:"normalized_degrees"`
	Radians               float64 `json:"radians"`
	Sine                  float64 `json:"sine"`
	Cosine                float64 `json:"cosine"`
	Tangent               float64 `json:"tangent"`
	ExactSine             *string `json:"exact_sine,omitempty"`
	ExactCosine           *string `json:"exact_cosine,omitempty"`
	ExactTangent          *string `json:"exact_tangent,omitempty"`
	Quadrant              int     `json:"quadrant"`
	OnAxis                bool    `json:"on_axis"`
	ReferenceAngleDegrees float64 `json:"reference_angle_degrees"`
	Point                 Point   `json:"point"`
}

// IsSpecial reports whether exact forms are available
func (e TrigEvaluation) IsSpecial() bool {
	return e.ExactSine != nil
}

// TangentDefined reports whether the terminal ray is off the vertical axis
func (e TrigEvaluation) TangentDefined() bool {
	return !(e.NormalizedDegrees == 90 || e.NormalizedDegrees == 270)
}

// SpecialAngle is one row of the exact-value table
type SpecialAngle struct {
	Degrees int    `json:"degrees"`
	Radians string `json:"radians"`
	Sine    string `json:"sine"`
	Cosine  string `json:"cosine"`
	Tangent string `json:"tangent"`
}

// Identity names a trigonometric identity that can be verified numerically
type Identity string

const (
	IdentityPythagorean       Identity = "pythagorean"
	IdentityTangentQuotient   Identity = "tangent-quotient"
	IdentityDoubleAngleSine   Identity = "double-angle-sine"
	IdentityDoubleAngleCosine Identity = "double-angle-cosine"
	IdentityCofunction        Identity = "cofunction"
	IdentityEvenOdd           Identity = "even-odd"
)

// IdentityCheck is the outcome of evaluating both sides of an identity
type IdentityCheck struct {
	Identity     Identity `json:"identity"`
	Expression   string   `json:"expression"`
	AngleDegrees float64  `json:"angle_degrees"`
	Left         float64  `json:"left"`
	Right        float64  `json:"right"`
	Difference   float64  `json:"difference"`
	Holds        bool     `json:"holds"`
}
