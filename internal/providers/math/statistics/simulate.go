package statistics

import (
	"fmt"
	gomath "math"
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	DefaultMaxTrials     = 5000
	DefaultMaxSampleSize = 10000
	HistogramBins        = 10
)

// Limits bounds the work a single simulation may do
type Limits struct {
	MaxTrials     int
	MaxSampleSize int
}

// DefaultLimits are used by Simulate
var DefaultLimits = Limits{MaxTrials: DefaultMaxTrials, MaxSampleSize: DefaultMaxSampleSize}

// SimulationConfig describes the population and the test being repeated.
// A zero Seed picks one from the clock; the seed used is echoed in the result.
type SimulationConfig struct {
	TrueMean   float64 `json:"true_mean"`
	StdDev     float64 `json:"std_dev"`
	SampleSize int     `json:"sample_size"`
	NullMean   float64 `json:"null_mean"`
	Alpha      float64 `json:"alpha"`
	Tail       Tail    `json:"tail"`
	Trials     int     `json:"trials"`
	Seed       uint64  `json:"seed"`
}

// Bin counts p-values in [Lower, Upper)
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// SimulationResult summarizes the repeated tests. RejectionRate is the
// empirical type I error when TrueMean equals NullMean and the power otherwise.
type SimulationResult struct {
	Config        SimulationConfig `json:"config"`
	Rejections    int              `json:"rejections"`
	RejectionRate float64          `json:"rejection_rate"`
	MeanPValue    float64          `json:"mean_p_value"`
	Histogram     []Bin            `json:"histogram"`
	NullIsTrue    bool             `json:"null_is_true"`
}

// Simulate runs cfg under DefaultLimits
func Simulate(cfg SimulationConfig) (SimulationResult, error) {
	return DefaultLimits.Simulate(cfg)
}

// Simulate draws cfg.Trials samples and runs a t-test on each
func (l Limits) Simulate(cfg SimulationConfig) (SimulationResult, error) {
	if err := validate(cfg.Alpha, cfg.Tail); err != nil {
		return SimulationResult{}, err
	}
	if cfg.SampleSize < 2 || !(cfg.StdDev > 0) {
		return SimulationResult{}, fmt.Errorf("%w: need sample size >= 2 and std dev > 0", ErrInvalidSample)
	}
	if l.MaxSampleSize > 0 && cfg.SampleSize > l.MaxSampleSize {
		return SimulationResult{}, fmt.Errorf("%w: sample size %d exceeds %d", ErrInvalidSample, cfg.SampleSize, l.MaxSampleSize)
	}
	if cfg.Trials < 1 {
		return SimulationResult{}, fmt.Errorf("%w: need at least one trial", ErrInvalidSample)
	}
	if l.MaxTrials > 0 && cfg.Trials > l.MaxTrials {
		return SimulationResult{}, fmt.Errorf("%w: %d exceeds %d", ErrTooManyTrials, cfg.Trials, l.MaxTrials)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	pop := distuv.Normal{
		Mu:    cfg.TrueMean,
		Sigma: cfg.StdDev,
		Src:   rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15),
	}

	sample := make([]float64, cfg.SampleSize)
	pvalues := make([]float64, 0, cfg.Trials)
	rejections := 0
	for i := 0; i < cfg.Trials; i++ {
		for j := range sample {
			sample[j] = pop.Rand()
		}
		s, err := Summarize(sample)
		if err != nil {
			return SimulationResult{}, err
		}
		res, err := TTest(s, cfg.NullMean, cfg.Alpha, cfg.Tail)
		if err != nil {
			return SimulationResult{}, err
		}
		if res.Reject {
			rejections++
		}
		pvalues = append(pvalues, res.PValue)
	}

	return SimulationResult{
		Config:        cfg,
		Rejections:    rejections,
		RejectionRate: float64(rejections) / float64(cfg.Trials),
		MeanPValue:    stat.Mean(pvalues, nil),
		Histogram:     histogram(pvalues),
		NullIsTrue:    cfg.TrueMean == cfg.NullMean,
	}, nil
}

// histogram bins p-values into HistogramBins equal bins over [0, 1]
func histogram(pvalues []float64) []Bin {
	sorted := make([]float64, len(pvalues))
	copy(sorted, pvalues)
	sort.Float64s(sorted)

	dividers := make([]float64, HistogramBins+1)
	for i := range dividers {
		dividers[i] = float64(i) / HistogramBins
	}
	// p can be exactly 1
	dividers[HistogramBins] = gomath.Nextafter(1, 2)

	counts := stat.Histogram(nil, dividers, sorted, nil)
	bins := make([]Bin, HistogramBins)
	for i := range bins {
		bins[i] = Bin{
			Lower: float64(i) / HistogramBins,
			Upper: float64(i+1) / HistogramBins,
			Count: int(counts[i]),
		}
	}
	return bins
}
