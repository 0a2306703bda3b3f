package macro

import (
	"context"

	"github.com/macroview/macro-dashboard/internal/model"
)

// SeriesSource fetches observation series by FRED series id. The production
// implementation is *fred.Client.
type SeriesSource interface {
	Observations(ctx context.Context, seriesID string) (model.Series, error)
}

// Provider defines the interface for the snapshot service.
type Provider interface {
	SetUpdateCallback(func(*model.Indicator))
	Refresh(ctx context.Context) (*model.Snapshot, error)
	CurrentSnapshot() *model.Snapshot
	SeriesSummary(ctx context.Context, seriesID string, window int) (Summary, error)

	// SetMaxParallel sets the maximum number of concurrent series fetches
	SetMaxParallel(max int)
}
