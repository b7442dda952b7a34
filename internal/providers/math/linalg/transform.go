package linalg

import (
	"fmt"
	gomath "math"

	"gonum.org/v1/gonum/mat"
)

// Point is a point in the plane
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transform is the 2x2 matrix [[A B] [C D]] acting on column vectors
type Transform struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Rotation rotates counterclockwise by degrees
func Rotation(degrees float64) Transform {
	sin, cos := gomath.Sincos(degrees * gomath.Pi / 180)
	return Transform{A: cos, B: -sin, C: sin, D: cos}
}

// Scaling stretches along the axes
func Scaling(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Shear shears horizontally by kx and vertically by ky
func Shear(kx, ky float64) Transform {
	return Transform{A: 1, B: kx, C: ky, D: 1}
}

// Reflection mirrors across "x", "y", "diagonal" (y = x) or "origin"
func Reflection(axis string) (Transform, error) {
	switch axis {
	case "x":
		return Transform{A: 1, D: -1}, nil
	case "y":
		return Transform{A: -1, D: 1}, nil
	case "diagonal":
		return Transform{B: 1, C: 1}, nil
	case "origin":
		return Transform{A: -1, D: -1}, nil
	}
	return Transform{}, fmt.Errorf("%w: reflection across %q", ErrUnknownPreset, axis)
}

// FromRows builds a transform from a row-major 2x2 matrix
func FromRows(rows [][]float64) (Transform, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return Transform{}, ErrBadShape
	}
	return Transform{A: rows[0][0], B: rows[0][1], C: rows[1][0], D: rows[1][1]}, nil
}

// Rows returns the row-major matrix
func (t Transform) Rows() [][]float64 {
	return [][]float64{{t.A, t.B}, {t.C, t.D}}
}

func (t Transform) dense() *mat.Dense {
	return mat.NewDense(2, 2, []float64{t.A, t.B, t.C, t.D})
}

func fromDense(m mat.Matrix) Transform {
	return Transform{A: m.At(0, 0), B: m.At(0, 1), C: m.At(1, 0), D: m.At(1, 1)}
}

// Determinant is the signed area scale factor
func (t Transform) Determinant() float64 {
	return mat.Det(t.dense())
}

// PreservesOrientation reports whether the transform keeps handedness
func (t Transform) PreservesOrientation() bool {
	return t.Determinant() > 0
}

// Inverse returns the inverse transform
func (t Transform) Inverse() (Transform, error) {
	if gomath.Abs(t.Determinant()) < SingularTolerance {
		return Transform{}, ErrSingular
	}
	var inv mat.Dense
	if err := inv.Inverse(t.dense()); err != nil {
		return Transform{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return fromDense(&inv), nil
}

// Compose returns the transform that applies t first, then next
func (t Transform) Compose(next Transform) Transform {
	var out mat.Dense
	out.Mul(next.dense(), t.dense())
	return fromDense(&out)
}

// Apply maps every point through the transform
func (t Transform) Apply(points []Point) []Point {
	if len(points) == 0 {
		return []Point{}
	}
	data := make([]float64, 2*len(points))
	for i, p := range points {
		data[i] = p.X
		data[len(points)+i] = p.Y
	}
	in := mat.NewDense(2, len(points), data)

	var out mat.Dense
	out.Mul(t.dense(), in)

	mapped := make([]Point, len(points))
	for i := range points {
		mapped[i] = Point{X: out.At(0, i), Y: out.At(1, i)}
	}
	return mapped
}

// UnitSquare is the default shape shown by the transformation widget
func UnitSquare() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}
