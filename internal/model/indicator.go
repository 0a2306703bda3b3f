package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Indicator represents a single macro indicator row in a snapshot
type Indicator struct {
	ID          string          // stable slug, e.g. "real_gdp_growth"
	Name        string          // display name, e.g. "Real GDP Growth (%)"
	SeriesIDs   []string        // FRED series the value derives from
	Status      IndicatorStatus
	Value       float64 // derived value, meaningful only when HasValue
	HasValue    bool    // false renders as the placeholder dash
	LastError   string  // last error message if any
	RefreshedAt time.Time
}

// SetValue records a derived value. Non-finite values collapse to absence,
// the UI never sees NaN or Inf.
func (in *Indicator) SetValue(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		in.HasValue = false
		in.Status = StatusNoData
		return
	}
	in.Value = v
	in.HasValue = true
	in.Status = StatusFresh
}

// SetError marks the indicator failed and clears any stale value
func (in *Indicator) SetError(err error) {
	in.HasValue = false
	in.Status = StatusError
	if err != nil {
		in.LastError = err.Error()
	}
}

// FormatValue returns the value with fixed two-decimal formatting, or "—"
// when the indicator has no value
func (in *Indicator) FormatValue() string {
	return in.FormatValueDecimals(2)
}

// FormatValueDecimals formats the value with the given number of decimals
func (in *Indicator) FormatValueDecimals(decimals int) string {
	if !in.HasValue {
		return "—"
	}
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f", decimals, in.Value)
}

// SeriesLabel returns the FRED series ids joined for display
func (in *Indicator) SeriesLabel() string {
	return strings.Join(in.SeriesIDs, ", ")
}
