package model

// IndicatorStatus represents the fetch status of a single indicator
type IndicatorStatus string

const (
	// StatusPending means the indicator is queued for refresh but not started
	StatusPending IndicatorStatus = "Pending"

	// StatusFetching means the indicator's series are being fetched
	StatusFetching IndicatorStatus = "Fetching"

	// StatusFresh means the indicator holds a value from the last refresh
	StatusFresh IndicatorStatus = "Fresh"

	// StatusNoData means the fetch succeeded but no value could be derived
	StatusNoData IndicatorStatus = "NoData"

	// StatusError means the fetch or derivation failed
	StatusError IndicatorStatus = "Error"
)

// String returns the string representation of IndicatorStatus
func (s IndicatorStatus) String() string {
	return string(s)
}

// IsActive returns true if the indicator is part of an in-flight refresh
func (s IndicatorStatus) IsActive() bool {
	return s == StatusPending || s == StatusFetching
}

// IsFinished returns true if the indicator reached a terminal refresh state
func (s IndicatorStatus) IsFinished() bool {
	return s == StatusFresh || s == StatusNoData || s == StatusError
}
