package statistics

import (
	"context"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/common"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/shared/types"
)

// Ops exposes hypothesis testing as tools
type Ops struct {
	*common.MathOps
	Limits Limits
}

// GetTools returns statistics tool definitions
func (s *Ops) GetTools() []types.Tool {
	sample := []types.Parameter{
		{Name: "data", Type: "array", Description: "Raw sample (alternative to mean/std_dev/n)", Required: false},
		{Name: "mean", Type: "number", Description: "Sample mean", Required: false},
		{Name: "std_dev", Type: "number", Description: "Sample standard deviation", Required: false},
		{Name: "n", Type: "integer", Description: "Sample size", Required: false},
		{Name: "mu0", Type: "number", Description: "Hypothesized mean", Required: true},
		{Name: "alpha", Type: "number", Description: "Significance level (default 0.05)", Required: false},
		{Name: "tail", Type: "string", Description: "two | left | right (default two)", Required: false},
	}
	ztest := append([]types.Parameter{
		{Name: "sigma", Type: "number", Description: "Known population standard deviation", Required: true},
	}, sample...)

	return []types.Tool{
		{
			ID:          "math.stats.describe",
			Name:        "Describe Sample",
			Description: "Mean, standard deviation, median and size of a sample",
			Parameters: []types.Parameter{
				{Name: "data", Type: "array", Description: "Sample", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.stats.ztest",
			Name:        "One-sample Z-test",
			Description: "Test a mean against mu0 with known sigma",
			Parameters:  ztest,
			Returns:     "object",
		},
		{
			ID:          "math.stats.ttest",
			Name:        "One-sample T-test",
			Description: "Test a mean against mu0 with the sample standard deviation",
			Parameters:  sample,
			Returns:     "object",
		},
		{
			ID:          "math.stats.simulate",
			Name:        "Hypothesis Test Simulator",
			Description: "Repeat a t-test on samples from a normal population and report the rejection rate",
			Parameters: []types.Parameter{
				{Name: "true_mean", Type: "number", Description: "Population mean", Required: true},
				{Name: "std_dev", Type: "number", Description: "Population standard deviation", Required: true},
				{Name: "sample_size", Type: "integer", Description: "Observations per trial", Required: true},
				{Name: "null_mean", Type: "number", Description: "Hypothesized mean", Required: true},
				{Name: "alpha", Type: "number", Description: "Significance level (default 0.05)", Required: false},
				{Name: "tail", Type: "string", Description: "two | left | right (default two)", Required: false},
				{Name: "trials", Type: "integer", Description: "Number of repetitions (default 1000)", Required: false},
				{Name: "seed", Type: "integer", Description: "Random seed for reproducible runs", Required: false},
			},
			Returns: "object",
		},
	}
}

// Describe summarizes a raw sample
func (s *Ops) Describe(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	data, ok := common.GetNumbers(params, "data")
	if !ok {
		return common.Failure("data array required")
	}
	if err := common.ValidateNumbers(data, "data"); err != nil {
		return common.Failure(err.Error())
	}
	sum, err := Summarize(data)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{
		"result": sum,
		"median": Median(data),
	})
}

// ZTest runs a one-sample z-test
func (s *Ops) ZTest(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sum, mu0, alpha, tail, msg := testParams(params)
	if msg != "" {
		return common.Failure(msg)
	}
	sigma, ok := common.GetNumber(params, "sigma")
	if !ok {
		return common.Failure("sigma parameter required")
	}
	res, err := ZTest(sum, mu0, sigma, alpha, tail)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": res, "summary": sum})
}

// TTest runs a one-sample t-test
func (s *Ops) TTest(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	sum, mu0, alpha, tail, msg := testParams(params)
	if msg != "" {
		return common.Failure(msg)
	}
	res, err := TTest(sum, mu0, alpha, tail)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": res, "summary": sum})
}

// Simulate runs the hypothesis testing simulator
func (s *Ops) Simulate(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	cfg := SimulationConfig{Alpha: 0.05, Tail: TwoTailed, Trials: 1000}

	var ok bool
	if cfg.TrueMean, ok = common.GetNumber(params, "true_mean"); !ok {
		return common.Failure("true_mean parameter required")
	}
	if cfg.StdDev, ok = common.GetNumber(params, "std_dev"); !ok {
		return common.Failure("std_dev parameter required")
	}
	if cfg.SampleSize, ok = common.GetInt(params, "sample_size"); !ok {
		return common.Failure("sample_size parameter required (integer)")
	}
	if cfg.NullMean, ok = common.GetNumber(params, "null_mean"); !ok {
		return common.Failure("null_mean parameter required")
	}
	if alpha, ok := common.GetNumber(params, "alpha"); ok {
		cfg.Alpha = alpha
	}
	if tail, ok := common.GetString(params, "tail"); ok && tail != "" {
		cfg.Tail = Tail(tail)
	}
	if trials, ok := common.GetInt(params, "trials"); ok {
		cfg.Trials = trials
	}
	if seed, ok := common.GetInt(params, "seed"); ok && seed > 0 {
		cfg.Seed = uint64(seed)
	}
	if err := common.ValidateNumbers([]float64{cfg.TrueMean, cfg.StdDev, cfg.NullMean}, "population"); err != nil {
		return common.Failure(err.Error())
	}

	res, err := s.Limits.Simulate(cfg)
	if err != nil {
		return common.Failure(err.Error())
	}
	return common.Success(map[string]interface{}{"result": res})
}

// testParams reads the sample summary (raw data or mean/std_dev/n) and test settings
func testParams(params map[string]interface{}) (Summary, float64, float64, Tail, string) {
	var sum Summary
	if data, ok := common.GetNumbers(params, "data"); ok {
		if err := common.ValidateNumbers(data, "data"); err != nil {
			return sum, 0, 0, "", err.Error()
		}
		var err error
		if sum, err = Summarize(data); err != nil {
			return sum, 0, 0, "", err.Error()
		}
	} else {
		mean, ok1 := common.GetNumber(params, "mean")
		std, ok2 := common.GetNumber(params, "std_dev")
		n, ok3 := common.GetInt(params, "n")
		if !ok1 || !ok2 || !ok3 {
			return sum, 0, 0, "", "data array or mean, std_dev and n required"
		}
		sum = Summary{Mean: mean, StdDev: std, N: n}
	}

	mu0, ok := common.GetNumber(params, "mu0")
	if !ok {
		return sum, 0, 0, "", "mu0 parameter required"
	}
	alpha := 0.05
	if a, ok := common.GetNumber(params, "alpha"); ok {
		alpha = a
	}
	tail := TwoTailed
	if t, ok := common.GetString(params, "tail"); ok && t != "" {
		tail = Tail(t)
	}
	return sum, mu0, alpha, tail, ""
}
