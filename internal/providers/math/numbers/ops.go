package numbers

import (
	"context"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Ops exposes parsing and classification as tools
type Ops struct {
	*common.MathOps
}

// GetTools returns number tool definitions
func (o *Ops) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.parse",
			Name:        "Parse Number",
			Description: "Parse integer, decimal, complex (a+bi) or infinity notation",
			Parameters: []types.Parameter{
				{Name: "input", Type: "string", Description: "Raw numeric text", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.classify",
			Name:        "Classify Number",
			Description: "Classify a number as natural, integer, rational, real or complex",
			Parameters: []types.Parameter{
				{Name: "input", Type: "string", Description: "Raw numeric text", Required: true},
			},
			Returns: "object",
		},
	}
}

// Parse parses the input parameter
func (o *Ops) Parse(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	input, ok := common.GetString(params, "input")
	if !ok {
		return common.Failure("input parameter required")
	}
	return common.Success(map[string]interface{}{"result": Parse(input)})
}

// Classify classifies the input parameter. An unparseable input is still a
// successful call; the classification carries is_valid=false.
func (o *Ops) Classify(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	input, ok := common.GetString(params, "input")
	if !ok {
		return common.Failure("input parameter required")
	}
	c := Classify(input)
	return common.Success(map[string]interface{}{
		"result": c,
		"sets":   c.Sets(),
	})
}
