package linalg

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Ops exposes vector and matrix operations as tools
type Ops struct {
	*common.MathOps
}

// GetTools returns linear algebra tool definitions
func (l *Ops) GetTools() []types.Tool {
	binary := []types.Parameter{
		{Name: "a", Type: "array", Description: "First vector", Required: true},
		{Name: "b", Type: "array", Description: "Second vector", Required: true},
	}
	single := []types.Parameter{
		{Name: "v", Type: "array", Description: "Vector", Required: true},
	}
	matrix := []types.Parameter{
		{Name: "matrix", Type: "array", Description: "Row-major 2x2 matrix [[a, b], [c, d]]", Required: true},
	}

	return []types.Tool{
		{ID: "math.vector.add", Name: "Vector Addition", Description: "Add two vectors", Parameters: binary, Returns: "array"},
		{ID: "math.vector.subtract", Name: "Vector Subtraction", Description: "Subtract two vectors", Parameters: binary, Returns: "array"},
		{ID: "math.vector.dot", Name: "Dot Product", Description: "Dot product of two vectors", Parameters: binary, Returns: "number"},
		{ID: "math.vector.cross", Name: "Cross Product", Description: "Cross product of two 3D vectors", Parameters: binary, Returns: "array"},
		{ID: "math.vector.angle", Name: "Angle Between Vectors", Description: "Angle between two vectors in degrees", Parameters: binary, Returns: "number"},
		{ID: "math.vector.project", Name: "Projection", Description: "Project vector a onto vector b", Parameters: binary, Returns: "array"},
		{ID: "math.vector.magnitude", Name: "Magnitude", Description: "Euclidean length of a vector", Parameters: single, Returns: "number"},
		{ID: "math.vector.normalize", Name: "Normalize", Description: "Unit vector in the same direction", Parameters: single, Returns: "array"},
		{
			ID:          "math.vector.scale",
			Name:        "Scalar Multiplication",
			Description: "Multiply a vector by a scalar",
			Parameters: append([]types.Parameter{
				{Name: "k", Type: "number", Description: "Scalar", Required: true},
			}, single...),
			Returns: "array",
		},
		{
			ID:          "math.matrix.transform",
			Name:        "Matrix Transformation",
			Description: "Apply a 2x2 matrix or preset (rotation, scaling, shear, reflection) to points",
			Parameters: []types.Parameter{
				{Name: "matrix", Type: "array", Description: "Row-major 2x2 matrix", Required: false},
				{Name: "preset", Type: "string", Description: "rotation | scaling | shear | reflection", Required: false},
				{Name: "angle", Type: "number", Description: "Rotation angle in degrees", Required: false},
				{Name: "sx", Type: "number", Description: "Horizontal scale", Required: false},
				{Name: "sy", Type: "number", Description: "Vertical scale", Required: false},
				{Name: "kx", Type: "number", Description: "Horizontal shear", Required: false},
				{Name: "ky", Type: "number", Description: "Vertical shear", Required: false},
				{Name: "axis", Type: "string", Description: "Reflection axis: x | y | diagonal | origin", Required: false},
				{Name: "points", Type: "array", Description: "Points as [x, y] pairs (default: unit square)", Required: false},
			},
			Returns: "object",
		},
		{ID: "math.matrix.determinant", Name: "Determinant", Description: "Determinant of a 2x2 matrix", Parameters: matrix, Returns: "number"},
		{ID: "math.matrix.inverse", Name: "Inverse", Description: "Inverse of a 2x2 matrix", Parameters: matrix, Returns: "array"},
	}
}

// Vector dispatches the binary and unary vector tools
func (l *Ops) Vector(ctx context.Context, op string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch op {
	case "magnitude", "normalize", "scale":
		v, ok := common.GetNumbers(params, "v")
		if !ok {
			return common.Failure("v parameter required (array of numbers)")
		}
		switch op {
		case "magnitude":
			return wrap(Magnitude(v))
		case "normalize":
			return wrap(Normalize(v))
		default:
			k, ok := common.GetNumber(params, "k")
			if !ok {
				return common.Failure("k parameter required")
			}
			return wrap(Scale(k, v))
		}
	}

	a, ok := common.GetNumbers(params, "a")
	if !ok {
		return common.Failure("a parameter required (array of numbers)")
	}
	b, ok := common.GetNumbers(params, "b")
	if !ok {
		return common.Failure("b parameter required (array of numbers)")
	}

	switch op {
	case "add":
		return wrap(Add(a, b))
	case "subtract":
		return wrap(Subtract(a, b))
	case "dot":
		return wrap(Dot(a, b))
	case "cross":
		return wrap(Cross(a, b))
	case "angle":
		return wrap(Angle(a, b))
	case "project":
		return wrap(Project(a, b))
	default:
		return common.Failure(fmt.Sprintf("unknown vector operation: %s", op))
	}
}

// Transform applies a matrix or preset to a set of points
func (l *Ops) Transform(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	t, err := transformFromParams(params)
	if err != nil {
		return common.Failure(err.Error())
	}

	points := UnitSquare()
	if _, present := params["points"]; present {
		rows, ok := common.GetMatrix(params, "points")
		if !ok {
			return common.Failure("points must be an array of [x, y] pairs")
		}
		points = make([]Point, 0, len(rows))
		for _, r := range rows {
			if len(r) != 2 {
				return common.Failure("points must be an array of [x, y] pairs")
			}
			points = append(points, Point{X: r[0], Y: r[1]})
		}
	}

	mapped := t.Apply(points)
	if err := checkFinite(t.Determinant(), mapped); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{
		"matrix":                t.Rows(),
		"determinant":           t.Determinant(),
		"preserves_orientation": t.PreservesOrientation(),
		"points":                points,
		"result":                mapped,
	})
}

// Determinant computes the determinant of the matrix parameter
func (l *Ops) Determinant(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	t, err := matrixParam(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	return wrap(t.Determinant(), nil)
}

// Inverse inverts the matrix parameter
func (l *Ops) Inverse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	t, err := matrixParam(params)
	if err != nil {
		return common.Failure(err.Error())
	}
	inv, err := t.Inverse()
	if err != nil {
		return common.Failure(err.Error())
	}
	return wrap(inv.Rows(), nil)
}

func matrixParam(params map[string]interface{}) (Transform, error) {
	rows, ok := common.GetMatrix(params, "matrix")
	if !ok {
		return Transform{}, fmt.Errorf("matrix parameter required (2x2 array)")
	}
	return FromRows(rows)
}

func transformFromParams(params map[string]interface{}) (Transform, error) {
	if _, ok := params["matrix"]; ok {
		return matrixParam(params)
	}

	preset, _ := common.GetString(params, "preset")
	number := func(key string, def float64) float64 {
		if v, ok := common.GetNumber(params, key); ok {
			return v
		}
		return def
	}

	switch preset {
	case "rotation":
		return Rotation(number("angle", 0)), nil
	case "scaling":
		return Scaling(number("sx", 1), number("sy", 1)), nil
	case "shear":
		return Shear(number("kx", 0), number("ky", 0)), nil
	case "reflection":
		axis, _ := common.GetString(params, "axis")
		return Reflection(axis)
	case "", "identity":
		return Identity(), nil
	}
	return Transform{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
}

func wrap[T any](v T, err error) (*types.Result, error) {
	if err == nil {
		err = checkFinite(v)
	}
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": v})
}

// checkFinite fails when any number in a result is Inf or NaN
func checkFinite(values ...interface{}) error {
	for _, v := range values {
		var err error
		switch x := v.(type) {
		case float64:
			err = common.CheckFinite("result", x)
		case []float64:
			err = common.CheckFinite("result", x...)
		case [][]float64:
			for _, row := range x {
				if err = common.CheckFinite("result", row...); err != nil {
					break
				}
			}
		case []Point:
			for _, p := range x {
				if err = common.CheckFinite("point", p.X, p.Y); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
