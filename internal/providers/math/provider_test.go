package math

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/numbers"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/series"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/statistics"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/providers/math/trig"
	"github.com/GriffinCanCode/MathForDevs/backend/internal/testutil"
)

func TestMathProvider(t *testing.T) {
	mathProvider := NewProvider(Limits{})
	ctx := context.Background()

	t.Run("Definition", func(t *testing.T) {
		def := mathProvider.Definition()
		assert.Equal(t, "math", def.ID)

		seen := map[string]bool{}
		for _, tool := range def.Tools {
			assert.False(t, seen[tool.ID], "duplicate tool %s", tool.ID)
			seen[tool.ID] = true
		}
		for _, id := range []string{
			"math.parse", "math.classify", "math.trig.evaluate", "math.trig.special",
			"math.trig.identity", "math.sum", "math.product", "math.vector.dot",
			"math.matrix.transform", "math.stats.ttest", "math.stats.simulate",
		} {
			assert.True(t, seen[id], "missing tool %s", id)
		}
	})

	t.Run("Every tool routes", func(t *testing.T) {
		for _, tool := range mathProvider.Definition().Tools {
			result, err := mathProvider.Execute(ctx, tool.ID, nil, nil)
			require.NoError(t, err, tool.ID)
			require.NotNil(t, result, tool.ID)
			if !result.Success {
				assert.NotContains(t, *result.Error, "unknown tool", tool.ID)
			}
		}
	})

	t.Run("Numbers", func(t *testing.T) {
		t.Run("Classify", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.classify", map[string]interface{}{"input": "-7"}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			c := result.Data["result"].(numbers.NumberClassification)
			assert.True(t, c.IsInteger)
			assert.False(t, c.IsNatural)
		})

		t.Run("Invalid input is still a result", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.classify", map[string]interface{}{"input": "abc"}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			c := result.Data["result"].(numbers.NumberClassification)
			assert.False(t, c.Valid)
		})

		t.Run("Missing input", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.parse", map[string]interface{}{}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Trig", func(t *testing.T) {
		t.Run("Evaluate", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.trig.evaluate", map[string]interface{}{"angle": 30.0}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			e := result.Data["result"].(trig.TrigEvaluation)
			require.NotNil(t, e.ExactSine)
			assert.Equal(t, "1/2", *e.ExactSine)
		})

		t.Run("Angle from text", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.trig.evaluate", map[string]interface{}{"angle": "90"}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			testutil.AssertDataField(t, result, "tangent_defined", false)
		})

		t.Run("Radians", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.radians", map[string]interface{}{"degrees": 180.0}, nil)
			require.NoError(t, err)
			assert.InDelta(t, 3.141592653589793, result.Data["result"], 1e-15)
		})
	})

	t.Run("Series", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.sum", map[string]interface{}{
			"start": 1.0, "end": 100.0, "term": "i",
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, 5050.0, result.Data["result"].(series.Result).Value)
	})

	t.Run("Vectors", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.vector.cross", map[string]interface{}{
			"a": []interface{}{1.0, 0.0, 0.0},
			"b": []interface{}{0.0, 1.0, 0.0},
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.Equal(t, []float64{0, 0, 1}, result.Data["result"])

		result, err = mathProvider.Execute(ctx, "math.vector.spin", map[string]interface{}{
			"a": []interface{}{1.0}, "b": []interface{}{1.0},
		}, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})

	t.Run("Matrices", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.matrix.determinant", map[string]interface{}{
			"matrix": []interface{}{[]interface{}{2.0, 1.0}, []interface{}{1.0, 3.0}},
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		assert.InDelta(t, 5.0, result.Data["result"], 1e-12)
	})

	t.Run("Statistics", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.stats.simulate", map[string]interface{}{
			"true_mean": 0.0, "std_dev": 1.0, "sample_size": 10.0, "null_mean": 0.0,
			"trials": 50.0, "seed": 3.0,
		}, nil)
		require.NoError(t, err)
		testutil.AssertSuccess(t, result)
		sim := result.Data["result"].(statistics.SimulationResult)
		assert.Len(t, sim.Histogram, statistics.HistogramBins)
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.nope", nil, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})
}

func TestLimits(t *testing.T) {
	p := NewProvider(Limits{MaxSeriesTerms: 10, MaxSimTrials: 5})
	ctx := context.Background()

	result, err := p.Execute(ctx, "math.sum", map[string]interface{}{
		"start": 1.0, "end": 11.0, "term": "i",
	}, nil)
	require.NoError(t, err)
	testutil.AssertError(t, result)

	result, err = p.Execute(ctx, "math.stats.simulate", map[string]interface{}{
		"true_mean": 0.0, "std_dev": 1.0, "sample_size": 10.0, "null_mean": 0.0, "trials": 6.0,
	}, nil)
	require.NoError(t, err)
	testutil.AssertError(t, result)
}
