package macro

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/macroview/macro-dashboard/internal/model"
)

// Service recomputes the indicator snapshot from a SeriesSource
type Service struct {
	source      SeriesSource
	defs        []Definition
	maxParallel int

	mu         sync.RWMutex
	snapshot   *model.Snapshot
	refreshing bool
	onUpdate   func(*model.Indicator) // callback for UI updates
}

// NewService creates a snapshot service over the full indicator catalog
func NewService(source SeriesSource, maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		source:      source,
		defs:        Catalog(),
		maxParallel: maxParallel,
	}
}

// SetUpdateCallback sets the callback function for indicator updates
func (s *Service) SetUpdateCallback(callback func(*model.Indicator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetMaxParallel sets the maximum number of concurrent series fetches
func (s *Service) SetMaxParallel(max int) {
	if max < 1 {
		max = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxParallel = max
}

// CurrentSnapshot returns the most recent snapshot, or nil before the first
// refresh
func (s *Service) CurrentSnapshot() *model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh recomputes every indicator and returns the finished snapshot.
// Fetches run concurrently, bounded by the configured parallelism; each
// indicator update is propagated through the callback as it lands. Only one
// refresh may be in flight at a time.
func (s *Service) Refresh(ctx context.Context) (*model.Snapshot, error) {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return nil, fmt.Errorf("refresh already in progress")
	}
	s.refreshing = true

	indicators := make([]*model.Indicator, 0, len(s.defs))
	for _, def := range s.defs {
		indicators = append(indicators, def.NewIndicator())
	}
	snapshot := model.NewSnapshot(uuid.NewString(), indicators)
	s.snapshot = snapshot
	maxParallel := s.maxParallel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}()

	log.Printf("Snapshot refresh started: id=%s indicators=%d parallel=%d",
		snapshot.ID, len(indicators), maxParallel)

	sem := semaphore.NewWeighted(int64(maxParallel))
	var wg sync.WaitGroup

	for i, def := range s.defs {
		indicator := indicators[i]
		s.notifyUpdate(indicator)

		if err := sem.Acquire(ctx, 1); err != nil {
			indicator.SetError(err)
			indicator.RefreshedAt = time.Now()
			s.notifyUpdate(indicator)
			continue
		}

		wg.Add(1)
		go func(def Definition, indicator *model.Indicator) {
			defer wg.Done()
			defer sem.Release(1)
			s.refreshIndicator(ctx, def, indicator)
		}(def, indicator)
	}

	wg.Wait()
	snapshot.Finish()

	log.Printf("Snapshot refresh finished: id=%s fresh=%d/%d errors=%v",
		snapshot.ID, snapshot.FreshCount(), len(indicators), snapshot.HasErrors())

	return snapshot, nil
}

// refreshIndicator fetches the definition's series and derives the value.
// Every failure mode collapses to absence on the indicator.
func (s *Service) refreshIndicator(ctx context.Context, def Definition, indicator *model.Indicator) {
	indicator.Status = model.StatusFetching
	s.notifyUpdate(indicator)

	series := make([]model.Series, 0, len(def.SeriesIDs))
	for _, seriesID := range def.SeriesIDs {
		fetched, err := s.source.Observations(ctx, seriesID)
		if err != nil {
			log.Printf("Indicator %s: fetch %s failed: %v", def.ID, seriesID, err)
			indicator.SetError(err)
			indicator.RefreshedAt = time.Now()
			s.notifyUpdate(indicator)
			return
		}
		series = append(series, fetched)
	}

	value, ok := def.Derive(series)
	if !ok {
		log.Printf("Indicator %s: no value derivable", def.ID)
		indicator.HasValue = false
		indicator.Status = model.StatusNoData
	} else {
		indicator.SetValue(value)
	}
	indicator.RefreshedAt = time.Now()
	s.notifyUpdate(indicator)
}

// SeriesSummary fetches a series and summarizes its most recent window of
// observations. Used by the indicator detail view.
func (s *Service) SeriesSummary(ctx context.Context, seriesID string, window int) (Summary, error) {
	series, err := s.source.Observations(ctx, seriesID)
	if err != nil {
		return Summary{}, fmt.Errorf("fetch %s: %w", seriesID, err)
	}
	return Summarize(series.TailValues(window))
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(indicator *model.Indicator) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(indicator)
	}
}
