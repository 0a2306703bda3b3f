package model

import "time"

// Observation is a single dated value of an economic series
type Observation struct {
	Date  time.Time
	Value float64
}

// Series is a time-ordered sequence of observations for one FRED series.
// Missing observations are dropped at decode time, so every entry holds a
// parseable value.
type Series struct {
	ID           string
	Observations []Observation
}

// Len returns the number of observations
func (s Series) Len() int {
	return len(s.Observations)
}

// Last returns the most recent observation value
func (s Series) Last() (float64, bool) {
	return s.FromEnd(1)
}

// FromEnd returns the n-th observation counted from the end (1 = latest)
func (s Series) FromEnd(n int) (float64, bool) {
	if n < 1 || n > len(s.Observations) {
		return 0, false
	}
	return s.Observations[len(s.Observations)-n].Value, true
}

// TailValues returns up to n of the most recent observation values, oldest first
func (s Series) TailValues(n int) []float64 {
	if n <= 0 {
		return nil
	}
	start := len(s.Observations) - n
	if start < 0 {
		start = 0
	}
	values := make([]float64, 0, len(s.Observations)-start)
	for _, obs := range s.Observations[start:] {
		values = append(values, obs.Value)
	}
	return values
}
