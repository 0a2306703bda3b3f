package macro

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// DefaultSummaryWindow is how many recent observations the detail view
// summarizes
const DefaultSummaryWindow = 24

// Summary holds descriptive statistics over a recent observation window
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Slope  float64 // per-observation linear trend
}

// Summarize computes descriptive statistics for a window of values
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("empty window")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return Summary{}, fmt.Errorf("stddev: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}

	summary := Summary{
		Count:  len(values),
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
	}

	if len(values) >= 2 {
		coords := make(stats.Series, 0, len(values))
		for i, v := range values {
			coords = append(coords, stats.Coordinate{X: float64(i), Y: v})
		}
		fitted, err := stats.LinearRegression(coords)
		if err != nil {
			return Summary{}, fmt.Errorf("regression: %w", err)
		}
		summary.Slope = (fitted[len(fitted)-1].Y - fitted[0].Y) / float64(len(fitted)-1)
	}

	return summary, nil
}

// TrendArrow maps the slope onto a direction glyph for display
func (s Summary) TrendArrow() string {
	switch {
	case s.Slope > 0:
		return "↑"
	case s.Slope < 0:
		return "↓"
	default:
		return "→"
	}
}
