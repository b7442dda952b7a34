// Package common holds the helpers shared by every math module.
//
// The math service is organized into specialized modules:
//   - numbers: Number parsing and set classification (natural, integer, rational, real, complex)
//   - trig: Unit circle evaluation with exact values for special angles, identity checks
//   - series: Summation and product evaluation
//   - linalg: Vector operations and 2x2 matrix transformations
//   - statistics: Hypothesis tests and the testing simulator
//
// Built on gonum.org/v1/gonum for scientific computing:
//   - IEEE 754 floating-point accuracy
//   - Dense matrices and vectors (gonum/mat)
//   - Probability distributions (gonum/stat/distuv)
//
// Module engines are pure functions. Invalid input is reported as data on the
// returned value (or as a sentinel error), never as a panic. The *Ops types
// adapt engines to the tool interface and always answer with a Result.
//
// Example Usage:
//
//	ops := &numbers.Ops{MathOps: &common.MathOps{}}
//	result, err := ops.Classify(ctx, map[string]interface{}{"input": "3+2i"}, nil)
package common
