package model

import (
	"time"
)

// SnapshotStatus represents the current status of a snapshot refresh
type SnapshotStatus string

const (
	SnapshotStatusRefreshing SnapshotStatus = "refreshing"
	SnapshotStatusReady      SnapshotStatus = "ready"
)

// Snapshot represents one refresh of the full indicator catalog. Indicators
// keep catalog order, which is also the display order.
type Snapshot struct {
	ID         string
	Indicators []*Indicator
	Status     SnapshotStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSnapshot creates a snapshot in the refreshing state
func NewSnapshot(id string, indicators []*Indicator) *Snapshot {
	return &Snapshot{
		ID:         id,
		Indicators: indicators,
		Status:     SnapshotStatusRefreshing,
		StartedAt:  time.Now(),
	}
}

// Finish marks the snapshot ready
func (s *Snapshot) Finish() {
	s.Status = SnapshotStatusReady
	s.FinishedAt = time.Now()
}

// Get returns the indicator with the given id
func (s *Snapshot) Get(id string) (*Indicator, bool) {
	for _, in := range s.Indicators {
		if in.ID == id {
			return in, true
		}
	}
	return nil, false
}

// FreshCount returns how many indicators hold a value
func (s *Snapshot) FreshCount() int {
	count := 0
	for _, in := range s.Indicators {
		if in.HasValue {
			count++
		}
	}
	return count
}

// HasErrors checks if any indicator failed during the refresh
func (s *Snapshot) HasErrors() bool {
	for _, in := range s.Indicators {
		if in.Status == StatusError {
			return true
		}
	}
	return false
}

// Values returns the indicator display-name to value mapping; indicators
// without a value map to nil
func (s *Snapshot) Values() map[string]*float64 {
	values := make(map[string]*float64, len(s.Indicators))
	for _, in := range s.Indicators {
		if in.HasValue {
			v := in.Value
			values[in.Name] = &v
		} else {
			values[in.Name] = nil
		}
	}
	return values
}
