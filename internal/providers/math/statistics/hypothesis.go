package statistics

import (
	"fmt"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summary describes a sample by its mean, sample standard deviation and size
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	N      int     `json:"n"`
}

// TestResult is the outcome of a one-sample test
type TestResult struct {
	Statistic        float64 `json:"statistic"`
	PValue           float64 `json:"p_value"`
	CriticalValue    float64 `json:"critical_value"`
	Reject           bool    `json:"reject"`
	DegreesOfFreedom int     `json:"degrees_of_freedom,omitempty"`
}

// Summarize computes the summary of a raw sample
func Summarize(x []float64) (Summary, error) {
	if len(x) < 2 {
		return Summary{}, fmt.Errorf("%w: need at least 2 observations", ErrInvalidSample)
	}
	mean, std := stat.MeanStdDev(x, nil)
	if !finite(mean, std) {
		return Summary{}, fmt.Errorf("%w: sample mean or spread", ErrOverflow)
	}
	return Summary{Mean: mean, StdDev: std, N: len(x)}, nil
}

// Median returns the empirical median of x without reordering it
func Median(x []float64) float64 {
	if len(x) == 0 {
		return gomath.NaN()
	}
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

func validate(alpha float64, tail Tail) error {
	if !(alpha > 0 && alpha < 1) {
		return ErrInvalidAlpha
	}
	if !tail.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTail, tail)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, x := range values {
		if gomath.IsNaN(x) || gomath.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// checkStatistic rejects inputs or a test statistic outside the float64 range
func checkStatistic(statistic float64, inputs ...float64) error {
	if !finite(inputs...) {
		return fmt.Errorf("%w: non-finite input", ErrInvalidSample)
	}
	if !finite(statistic) {
		return fmt.Errorf("%w: test statistic", ErrOverflow)
	}
	return nil
}

func validateSample(s Summary) error {
	if s.N < 2 {
		return fmt.Errorf("%w: n must be at least 2", ErrInvalidSample)
	}
	if !(s.StdDev > 0) {
		return fmt.Errorf("%w: standard deviation must be positive", ErrInvalidSample)
	}
	return nil
}

// cdfSurvival is the part of a distribution both tests need
type cdfSurvival interface {
	CDF(x float64) float64
	Survival(x float64) float64
	Quantile(p float64) float64
}

func decide(dist cdfSurvival, statistic, alpha float64, tail Tail) TestResult {
	var p, critical float64
	switch tail {
	case LeftTailed:
		p = dist.CDF(statistic)
		critical = dist.Quantile(alpha)
	case RightTailed:
		p = dist.Survival(statistic)
		critical = dist.Quantile(1 - alpha)
	default:
		p = gomath.Min(1, 2*dist.Survival(gomath.Abs(statistic)))
		critical = dist.Quantile(1 - alpha/2)
	}
	return TestResult{
		Statistic:     statistic,
		PValue:        p,
		CriticalValue: critical,
		Reject:        p < alpha,
	}
}

// ZTest tests the sample mean against mu0 with a known population sigma
func ZTest(s Summary, mu0, sigma, alpha float64, tail Tail) (TestResult, error) {
	if err := validate(alpha, tail); err != nil {
		return TestResult{}, err
	}
	if s.N < 2 || !(sigma > 0) {
		return TestResult{}, fmt.Errorf("%w: need n >= 2 and sigma > 0", ErrInvalidSample)
	}
	z := (s.Mean - mu0) / (sigma / gomath.Sqrt(float64(s.N)))
	if err := checkStatistic(z, s.Mean, mu0, sigma); err != nil {
		return TestResult{}, err
	}
	return decide(distuv.UnitNormal, z, alpha, tail), nil
}

// TTest tests the sample mean against mu0 using the sample standard deviation
func TTest(s Summary, mu0, alpha float64, tail Tail) (TestResult, error) {
	if err := validate(alpha, tail); err != nil {
		return TestResult{}, err
	}
	if err := validateSample(s); err != nil {
		return TestResult{}, err
	}
	df := s.N - 1
	t := (s.Mean - mu0) / (s.StdDev / gomath.Sqrt(float64(s.N)))
	if err := checkStatistic(t, s.Mean, s.StdDev, mu0); err != nil {
		return TestResult{}, err
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	res := decide(dist, t, alpha, tail)
	res.DegreesOfFreedom = df
	return res, nil
}
