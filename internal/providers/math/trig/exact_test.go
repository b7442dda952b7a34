package trig

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExact(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"1", 1},
		{"-1", -1},
		{"1/2", 0.5},
		{"-1/2", -0.5},
		{"√2/2", gomath.Sqrt2 / 2},
		{"-√3/2", -gomath.Sqrt(3) / 2},
		{"√3", gomath.Sqrt(3)},
		{"-√3/3", -gomath.Sqrt(3) / 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExact(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-15)
		})
	}
}

func TestParseExactErrors(t *testing.T) {
	_, err := ParseExact(Undefined)
	assert.ErrorIs(t, err, ErrUndefinedValue)

	for _, input := range []string{"", "abc", "√", "1/0", "2√3", "√2/"} {
		_, err := ParseExact(input)
		assert.ErrorIs(t, err, ErrInvalidExact, "input %q", input)
	}
}
