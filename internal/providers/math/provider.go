package math

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/linalg"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/numbers"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/series"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/statistics"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/trig"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Limits bounds the work a single tool call may do. Zero values fall back
// to the defaults.
type Limits struct {
	MaxSeriesTerms int
	MaxSimTrials   int
	MaxSampleSize  int
}

// DefaultLimits returns the limits used when none are configured
func DefaultLimits() Limits {
	return Limits{
		MaxSeriesTerms: 10000,
		MaxSimTrials:   statistics.DefaultMaxTrials,
		MaxSampleSize:  statistics.DefaultMaxSampleSize,
	}
}

// Provider implements mathematical operations
type Provider struct {
	// Module instances
	numbers *numbers.Ops
	trig    *trig.Ops
	series  *series.Ops
	linalg  *linalg.Ops
	stats   *statistics.Ops
}

// NewProvider creates a modular math provider
func NewProvider(limits Limits) *Provider {
	def := DefaultLimits()
	if limits.MaxSeriesTerms <= 0 {
		limits.MaxSeriesTerms = def.MaxSeriesTerms
	}
	if limits.MaxSimTrials <= 0 {
		limits.MaxSimTrials = def.MaxSimTrials
	}
	if limits.MaxSampleSize <= 0 {
		limits.MaxSampleSize = def.MaxSampleSize
	}

	ops := &common.MathOps{}
	return &Provider{
		numbers: &numbers.Ops{MathOps: ops},
		trig:    &trig.Ops{MathOps: ops},
		series:  &series.Ops{MathOps: ops, MaxTerms: limits.MaxSeriesTerms},
		linalg:  &linalg.Ops{MathOps: ops},
		stats: &statistics.Ops{MathOps: ops, Limits: statistics.Limits{
			MaxTrials:     limits.MaxSimTrials,
			MaxSampleSize: limits.MaxSampleSize,
		}},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	// Collect tools from all modules
	tools := []types.Tool{}
	tools = append(tools, m.numbers.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.series.GetTools()...)
	tools = append(tools, m.linalg.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Interactive math engines (number sets, unit circle, series, linear algebra, hypothesis testing)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"numbers",
			"trigonometry",
			"series",
			"linear-algebra",
			"statistics",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}

	// Vector tools share one dispatcher
	if op, ok := strings.CutPrefix(toolID, "math.vector."); ok {
		return m.linalg.Vector(ctx, op, params, appCtx)
	}

	switch toolID {
	// Numbers
	case "math.parse":
		return m.numbers.Parse(ctx, params, appCtx)
	case "math.classify":
		return m.numbers.Classify(ctx, params, appCtx)

	// Trig
	case "math.trig.evaluate":
		return m.trig.Evaluate(ctx, params, appCtx)
	case "math.trig.special":
		return m.trig.Special(ctx, params, appCtx)
	case "math.trig.identity":
		return m.trig.Identity(ctx, params, appCtx)
	case "math.radians":
		return m.trig.DegreesToRadians(ctx, params, appCtx)
	case "math.degrees":
		return m.trig.RadiansToDegrees(ctx, params, appCtx)

	// Series
	case "math.sum":
		return m.series.Sum(ctx, params, appCtx)
	case "math.product":
		return m.series.Product(ctx, params, appCtx)

	// Matrices
	case "math.matrix.transform":
		return m.linalg.Transform(ctx, params, appCtx)
	case "math.matrix.determinant":
		return m.linalg.Determinant(ctx, params, appCtx)
	case "math.matrix.inverse":
		return m.linalg.Inverse(ctx, params, appCtx)

	// Statistics
	case "math.stats.describe":
		return m.stats.Describe(ctx, params, appCtx)
	case "math.stats.ztest":
		return m.stats.ZTest(ctx, params, appCtx)
	case "math.stats.ttest":
		return m.stats.TTest(ctx, params, appCtx)
	case "math.stats.simulate":
		return m.stats.Simulate(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
