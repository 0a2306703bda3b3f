package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Count)
	assert.InDelta(t, 3.0, summary.Mean, 1e-9)
	assert.InDelta(t, 1.0, summary.Min, 1e-9)
	assert.InDelta(t, 5.0, summary.Max, 1e-9)
	assert.InDelta(t, 1.0, summary.Slope, 1e-9)
	assert.Equal(t, "↑", summary.TrendArrow())
}

func TestSummarizeDowntrend(t *testing.T) {
	summary, err := Summarize([]float64{5, 4, 3, 2})
	require.NoError(t, err)
	assert.Negative(t, summary.Slope)
	assert.Equal(t, "↓", summary.TrendArrow())
}

func TestSummarizeSingleValue(t *testing.T) {
	summary, err := Summarize([]float64{42})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 42.0, summary.Mean, 1e-9)
	// No trend from a single observation
	assert.Zero(t, summary.Slope)
	assert.Equal(t, "→", summary.TrendArrow())
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
}
