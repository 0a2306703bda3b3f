package export

// Package export writes indicator snapshots to xlsx workbooks so a refresh
// can be shared outside the app.
