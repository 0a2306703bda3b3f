package macro

// Package macro implements the indicator snapshot pipeline on top of the FRED
// observations API. It owns the indicator catalog, the per-indicator
// derivations (latest value, YoY, QoQ annualized, spreads), concurrency
// limits, and progress propagation to the UI.
