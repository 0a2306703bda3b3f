package macro

import (
	"math"

	"github.com/macroview/macro-dashboard/internal/model"
)

// Derivation constants
const (
	// YoYMinObservations is the minimum length of a monthly series for a
	// year-over-year change (current month plus the same month last year)
	YoYMinObservations = 13

	// QuartersPerYear annualizes a quarter-over-quarter growth rate
	QuartersPerYear = 4

	// PayrollScale converts the PAYEMS month delta for display
	PayrollScale = 1000
)

// DeriveFunc computes an indicator value from its fetched series, in catalog
// order. The bool reports whether a value could be derived.
type DeriveFunc func(series []model.Series) (float64, bool)

// Latest returns the last observation of a series
func Latest(s model.Series) (float64, bool) {
	return s.Last()
}

// YoY returns the year-over-year percent change of a monthly series
func YoY(s model.Series) (float64, bool) {
	if s.Len() < YoYMinObservations {
		return 0, false
	}
	last, _ := s.FromEnd(1)
	yearAgo, _ := s.FromEnd(YoYMinObservations)
	if yearAgo == 0 {
		return 0, false
	}
	return (last/yearAgo - 1) * 100, true
}

// QoQAnnualized returns the quarter-over-quarter annualized growth rate of a
// quarterly series
func QoQAnnualized(s model.Series) (float64, bool) {
	if s.Len() < 2 {
		return 0, false
	}
	last, _ := s.FromEnd(1)
	prev, _ := s.FromEnd(2)
	if prev == 0 {
		return 0, false
	}
	qoq := last/prev - 1
	return (math.Pow(1+qoq, QuartersPerYear) - 1) * 100, true
}

// MonthChangeScaled returns the last month-over-month delta divided by
// PayrollScale
func MonthChangeScaled(s model.Series) (float64, bool) {
	if s.Len() < 2 {
		return 0, false
	}
	last, _ := s.FromEnd(1)
	prev, _ := s.FromEnd(2)
	return (last - prev) / PayrollScale, true
}

// Spread returns latest(a) minus latest(b)
func Spread(a, b model.Series) (float64, bool) {
	lastA, okA := a.Last()
	lastB, okB := b.Last()
	if !okA || !okB {
		return 0, false
	}
	return lastA - lastB, true
}

// single wraps a one-series derivation into a DeriveFunc
func single(derive func(model.Series) (float64, bool)) DeriveFunc {
	return func(series []model.Series) (float64, bool) {
		if len(series) != 1 {
			return 0, false
		}
		return derive(series[0])
	}
}

// pair wraps a two-series derivation into a DeriveFunc
func pair(derive func(a, b model.Series) (float64, bool)) DeriveFunc {
	return func(series []model.Series) (float64, bool) {
		if len(series) != 2 {
			return 0, false
		}
		return derive(series[0], series[1])
	}
}
