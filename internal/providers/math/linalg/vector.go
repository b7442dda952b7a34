package linalg

import (
	gomath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func vec(v []float64) *mat.VecDense {
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewVecDense(len(data), data)
}

func pair(a, b []float64) (*mat.VecDense, *mat.VecDense, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, ErrEmptyVector
	}
	if len(a) != len(b) {
		return nil, nil, ErrDimensionMismatch
	}
	return vec(a), vec(b), nil
}

// Add returns a + b
func Add(a, b []float64) ([]float64, error) {
	va, vb, err := pair(a, b)
	if err != nil {
		return nil, err
	}
	va.AddVec(va, vb)
	return va.RawVector().Data, nil
}

// Subtract returns a - b
func Subtract(a, b []float64) ([]float64, error) {
	va, vb, err := pair(a, b)
	if err != nil {
		return nil, err
	}
	va.SubVec(va, vb)
	return va.RawVector().Data, nil
}

// Scale returns k·v
func Scale(k float64, v []float64) ([]float64, error) {
	if len(v) == 0 {
		return nil, ErrEmptyVector
	}
	out := make([]float64, len(v))
	floats.ScaleTo(out, k, v)
	return out, nil
}

// Dot returns a · b
func Dot(a, b []float64) (float64, error) {
	va, vb, err := pair(a, b)
	if err != nil {
		return 0, err
	}
	return mat.Dot(va, vb), nil
}

// Cross returns a × b for 3D vectors
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, ErrNotThreeD
	}
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Magnitude returns the Euclidean length of v
func Magnitude(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	return floats.Norm(v, 2), nil
}

// Normalize returns the unit vector in the direction of v
func Normalize(v []float64) ([]float64, error) {
	m, err := Magnitude(v)
	if err != nil {
		return nil, err
	}
	if m == 0 {
		return nil, ErrZeroVector
	}
	return Scale(1/m, v)
}

// Angle returns the angle between a and b in degrees
func Angle(a, b []float64) (float64, error) {
	va, vb, err := pair(a, b)
	if err != nil {
		return 0, err
	}
	ma, mb := mat.Norm(va, 2), mat.Norm(vb, 2)
	if ma == 0 || mb == 0 {
		return 0, ErrZeroVector
	}
	cos := mat.Dot(va, vb) / (ma * mb)
	cos = gomath.Max(-1, gomath.Min(1, cos))
	return gomath.Acos(cos) * 180 / gomath.Pi, nil
}

// Project returns the projection of a onto b
func Project(a, b []float64) ([]float64, error) {
	va, vb, err := pair(a, b)
	if err != nil {
		return nil, err
	}
	bb := mat.Dot(vb, vb)
	if bb == 0 {
		return nil, ErrZeroVector
	}
	vb.ScaleVec(mat.Dot(va, vb)/bb, vb)
	return vb.RawVector().Data, nil
}
