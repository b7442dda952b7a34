package series

import (
	"context"
	"strings"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Ops exposes summation and product as tools
type Ops struct {
	*common.MathOps
	// MaxTerms bounds the index range; zero means unbounded
	MaxTerms int
}

// GetTools returns series tool definitions
func (s *Ops) GetTools() []types.Tool {
	params := []types.Parameter{
		{Name: "start", Type: "integer", Description: "First index", Required: true},
		{Name: "end", Type: "integer", Description: "Last index (inclusive)", Required: true},
		{Name: "term", Type: "string", Description: "General term: " + termList(), Required: true},
	}
	return []types.Tool{
		{
			ID:          "math.sum",
			Name:        "Summation",
			Description: "Evaluate sigma notation Σ term(i) over an index range",
			Parameters:  params,
			Returns:     "object",
		},
		{
			ID:          "math.product",
			Name:        "Product",
			Description: "Evaluate pi notation Π term(i) over an index range",
			Parameters:  params,
			Returns:     "object",
		},
	}
}

// Sum evaluates a summation
func (s *Ops) Sum(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.run(params, Sum)
}

// Product evaluates a product
func (s *Ops) Product(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return s.run(params, Product)
}

func (s *Ops) run(params map[string]interface{}, eval func(int, int, Term, int) (Result, error)) (*types.Result, error) {
	start, ok := common.GetInt(params, "start")
	if !ok {
		return common.Failure("start parameter required (integer)")
	}
	end, ok := common.GetInt(params, "end")
	if !ok {
		return common.Failure("end parameter required (integer)")
	}
	term, ok := common.GetString(params, "term")
	if !ok {
		return common.Failure("term parameter required")
	}

	res, err := eval(start, end, Term(term), s.MaxTerms)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": res})
}

func termList() string {
	terms := Terms()
	names := make([]string, len(terms))
	for i, t := range terms {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
