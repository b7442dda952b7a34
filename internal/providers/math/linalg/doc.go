// Package linalg implements the vector operations and 2x2 matrix
// transformations behind the Linear Algebra page widgets, on top of
// gonum.org/v1/gonum/mat.
//
// All functions are pure; inputs are never modified.
package linalg

import "errors"

var (
	ErrEmptyVector       = errors.New("linalg: empty vector")
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
	ErrZeroVector        = errors.New("linalg: zero vector")
	ErrNotThreeD         = errors.New("linalg: cross product requires 3D vectors")
	ErrSingular          = errors.New("linalg: matrix is singular")
	ErrBadShape          = errors.New("linalg: matrix must be 2x2")
	ErrUnknownPreset     = errors.New("linalg: unknown transform preset")
)

// SingularTolerance is the determinant magnitude treated as zero
const SingularTolerance = 1e-12
