// Package series evaluates finite summations (Σ) and products (Π) over an
// integer index, as used by the Algebra page's sigma notation explorer.
package series

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
)

var (
	ErrTooManyTerms   = errors.New("series: too many terms")
	ErrDivisionByZero = errors.New("series: term divides by zero")
	ErrUnknownTerm    = errors.New("series: unknown term")
	ErrOverflow       = fmt.Errorf("series: %w", common.ErrOverflow)
)

// MaxPartials caps the partial results returned for display
const MaxPartials = 100

// Term is the general term f(i) of a series
type Term string

const (
	TermIndex            Term = "i"
	TermSquare           Term = "i^2"
	TermCube             Term = "i^3"
	TermPowerOfTwo       Term = "2^i"
	TermReciprocal       Term = "1/i"
	TermReciprocalSquare Term = "1/i^2"
	TermAlternating      Term = "(-1)^i"
)

// Operation is either a summation or a product
type Operation string

const (
	OpSum     Operation = "sum"
	OpProduct Operation = "product"
)

// Result is the evaluated series
type Result struct {
	Operation  Operation `json:"operation"`
	Term       Term      `json:"term"`
	Start      int       `json:"start"`
	End        int       `json:"end"`
	Count      int       `json:"count"`
	Value      float64   `json:"value"`
	Partials   []float64 `json:"partials"`
	ClosedForm *float64  `json:"closed_form,omitempty"`
}

// Terms lists the supported general terms
func Terms() []Term {
	return []Term{TermIndex, TermSquare, TermCube, TermPowerOfTwo, TermReciprocal, TermReciprocalSquare, TermAlternating}
}

func termFunc(term Term) (func(i int) (float64, error), bool) {
	switch term {
	case TermIndex:
		return func(i int) (float64, error) { return float64(i), nil }, true
	case TermSquare:
		return func(i int) (float64, error) { return float64(i) * float64(i), nil }, true
	case TermCube:
		return func(i int) (float64, error) { f := float64(i); return f * f * f, nil }, true
	case TermPowerOfTwo:
		return func(i int) (float64, error) { return gomath.Pow(2, float64(i)), nil }, true
	case TermReciprocal:
		return func(i int) (float64, error) {
			if i == 0 {
				return 0, ErrDivisionByZero
			}
			return 1 / float64(i), nil
		}, true
	case TermReciprocalSquare:
		return func(i int) (float64, error) {
			if i == 0 {
				return 0, ErrDivisionByZero
			}
			return 1 / (float64(i) * float64(i)), nil
		}, true
	case TermAlternating:
		return func(i int) (float64, error) {
			if i%2 == 0 {
				return 1, nil
			}
			return -1, nil
		}, true
	}
	return nil, false
}

// Sum evaluates Σ_{i=start}^{end} term(i). An empty range sums to 0.
func Sum(start, end int, term Term, limit int) (Result, error) {
	return evaluate(OpSum, start, end, term, limit)
}

// Product evaluates Π_{i=start}^{end} term(i). An empty range multiplies to 1.
func Product(start, end int, term Term, limit int) (Result, error) {
	return evaluate(OpProduct, start, end, term, limit)
}

func evaluate(op Operation, start, end int, term Term, limit int) (Result, error) {
	f, ok := termFunc(term)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTerm, term)
	}

	count, err := termCount(start, end, limit)
	if err != nil {
		return Result{}, err
	}

	acc := 0.0
	if op == OpProduct {
		acc = 1
	}
	res := Result{
		Operation: op,
		Term:      term,
		Start:     start,
		End:       end,
		Count:     count,
		Partials:  make([]float64, 0, min(count, MaxPartials)),
	}

	// n counts terms so the index never steps past end
	for n := 0; n < count; n++ {
		i := start + n
		v, err := f(i)
		if err != nil {
			return Result{}, fmt.Errorf("%w at i=%d", err, i)
		}
		if op == OpProduct {
			acc *= v
		} else {
			acc += v
		}
		if gomath.IsNaN(acc) || gomath.IsInf(acc, 0) {
			return Result{}, fmt.Errorf("%w at i=%d", ErrOverflow, i)
		}
		if len(res.Partials) < MaxPartials {
			res.Partials = append(res.Partials, acc)
		}
	}

	res.Value = acc
	if op == OpSum {
		res.ClosedForm = closedForm(term, start, end)
	}
	return res, nil
}

// termCount returns end-start+1 without overflowing int. The span is taken
// in uint64, where two's-complement subtraction is exact for end >= start.
func termCount(start, end, limit int) (int, error) {
	if end < start {
		return 0, nil
	}
	span := uint64(end) - uint64(start)
	if limit > 0 && span >= uint64(limit) {
		return 0, fmt.Errorf("%w: %d..%d exceeds limit %d", ErrTooManyTerms, start, end, limit)
	}
	if span >= gomath.MaxInt64 {
		return 0, fmt.Errorf("%w: %d..%d", ErrTooManyTerms, start, end)
	}
	return int(span) + 1, nil
}

// closedForm returns the textbook formula value when one applies
func closedForm(term Term, start, end int) *float64 {
	if end < start {
		return nil
	}
	var v float64
	switch term {
	case TermIndex, TermSquare, TermCube:
		if start < 1 {
			return nil
		}
		v = gauss(term, end) - gauss(term, start-1)
	case TermPowerOfTwo:
		// 2^start + ... + 2^end = 2^(end+1) - 2^start
		v = gomath.Pow(2, float64(end)+1) - gomath.Pow(2, float64(start))
	default:
		return nil
	}
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return nil
	}
	return &v
}

// gauss returns Σ_{i=1}^{n} of i, i² or i³
func gauss(term Term, n int) float64 {
	f := float64(n)
	switch term {
	case TermIndex:
		return f * (f + 1) / 2
	case TermSquare:
		return f * (f + 1) * (2*f + 1) / 6
	default:
		s := f * (f + 1) / 2
		return s * s
	}
}
