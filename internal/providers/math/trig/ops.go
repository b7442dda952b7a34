package trig

import (
	"context"
	"strings"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Ops handles trigonometric operations
type Ops struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *Ops) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.trig.evaluate",
			Name:        "Unit Circle",
			Description: "Evaluate sine, cosine and tangent of an angle with exact values for special angles",
			Parameters: []types.Parameter{
				{Name: "angle", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.trig.special",
			Name:        "Special Angles",
			Description: "List the exact sine, cosine and tangent of every multiple of 30° and 45°",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
		{
			ID:          "math.trig.identity",
			Name:        "Verify Identity",
			Description: "Numerically verify trigonometric identities at an angle",
			Parameters: []types.Parameter{
				{Name: "angle", Type: "number", Description: "Angle in degrees", Required: true},
				{Name: "identity", Type: "string", Description: "Identity name, one of " + identityList() + " (default: all)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "math.radians",
			Name:        "Degrees to Radians",
			Description: "Convert degrees to radians",
			Parameters: []types.Parameter{
				{Name: "degrees", Type: "number", Description: "Angle in degrees", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.degrees",
			Name:        "Radians to Degrees",
			Description: "Convert radians to degrees",
			Parameters: []types.Parameter{
				{Name: "radians", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
	}
}

// Evaluate evaluates the unit circle at the angle parameter
func (t *Ops) Evaluate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	angle, ok := common.GetNumber(params, "angle")
	if !ok {
		return common.Failure("angle parameter required")
	}
	if err := common.ValidateNumber(angle, "angle"); err != nil {
		return common.Failure(err.Error())
	}
	e := Evaluate(angle)
	return common.Success(map[string]interface{}{
		"result":          e,
		"tangent_defined": e.TangentDefined(),
	})
}

// Special lists the special angle table
func (t *Ops) Special(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": SpecialAngles()})
}

// Identity verifies one identity, or all of them when none is named
func (t *Ops) Identity(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	angle, ok := common.GetNumber(params, "angle")
	if !ok {
		return common.Failure("angle parameter required")
	}
	if err := common.ValidateNumber(angle, "angle"); err != nil {
		return common.Failure(err.Error())
	}

	name, ok := common.GetString(params, "identity")
	if !ok || name == "" {
		return common.Success(map[string]interface{}{"result": VerifyAll(angle)})
	}

	check, err := VerifyIdentity(Identity(name), angle)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": check})
}

// DegreesToRadians converts degrees to radians
func (t *Ops) DegreesToRadians(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	degrees, ok := common.GetNumber(params, "degrees")
	if !ok {
		return common.Failure("degrees parameter required")
	}
	rad := Radians(degrees)
	if err := common.CheckFinite("radians", rad); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": rad})
}

// RadiansToDegrees converts radians to degrees
func (t *Ops) RadiansToDegrees(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	radians, ok := common.GetNumber(params, "radians")
	if !ok {
		return common.Failure("radians parameter required")
	}
	deg := Degrees(radians)
	if err := common.CheckFinite("degrees", deg); err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": deg})
}

func identityList() string {
	ids := Identities()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
