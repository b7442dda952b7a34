package common

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// ErrOverflow reports a result that does not fit in a finite float64.
// JSON has no encoding for Inf or NaN, so such results are failures.
var ErrOverflow = errors.New("result overflows float64")

// MathOps provides common math helpers
type MathOps struct{}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// GetNumber extracts float64 from params with validation.
// Numeric strings are accepted since URL-synced widget state arrives as text.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toFloat(val)
}

// GetInt extracts an integral number from params
func GetInt(params map[string]interface{}, key string) (int, bool) {
	f, ok := GetNumber(params, key)
	if !ok || f != gomath.Trunc(f) || f < gomath.MinInt64 || f >= gomath.MaxInt64 {
		return 0, false
	}
	return int(f), true
}

// GetNumbers extracts array of numbers with type coercion
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	switch arr := params[key].(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, v := range arr {
			num, ok := toFloat(v)
			if !ok {
				return nil, false
			}
			numbers = append(numbers, num)
		}
		return numbers, true
	default:
		return nil, false
	}
}

// GetMatrix extracts a row-major matrix given as an array of arrays
func GetMatrix(params map[string]interface{}, key string) ([][]float64, bool) {
	rows, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}
	matrix := make([][]float64, 0, len(rows))
	for i := range rows {
		row, ok := GetNumbers(map[string]interface{}{"row": rows[i]}, "row")
		if !ok {
			return nil, false
		}
		matrix = append(matrix, row)
	}
	return matrix, true
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// ValidateNumber checks if a number is valid (not NaN or Inf)
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is NaN", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// ValidateNumbers validates an array of numbers
func ValidateNumbers(nums []float64, name string) error {
	for i, x := range nums {
		if err := ValidateNumber(x, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

// CheckFinite returns ErrOverflow naming the first non-finite value
func CheckFinite(name string, values ...float64) error {
	for i, x := range values {
		if gomath.IsNaN(x) || gomath.IsInf(x, 0) {
			if len(values) == 1 {
				return fmt.Errorf("%w: %s", ErrOverflow, name)
			}
			return fmt.Errorf("%w: %s[%d]", ErrOverflow, name, i)
		}
	}
	return nil
}

// toFloat coerces a parameter to a finite float64. "Inf" and "NaN" strings
// parse but are refused like any other non-number.
func toFloat(val interface{}) (float64, bool) {
	f, ok := coerce(val)
	if !ok || gomath.IsNaN(f) || gomath.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func coerce(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
