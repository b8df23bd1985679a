// Package results assembles the dashboard payload: it holds the cached
// spreadsheet snapshot and runs filtering, aggregation and facet counting
// on top of it.
package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alumni-sante/sondage-backend/internal/cache"
	"github.com/alumni-sante/sondage-backend/internal/domain"
)

// snapshotKey is the cache key for the normalized record snapshot.
const snapshotKey = "sheet:snapshot"

// recordSource fetches and normalizes the survey rows.
type recordSource interface {
	FetchResponses(ctx context.Context) ([]domain.SurveyResponse, error)
}

// Service implements the results operations.
type Service struct {
	log    *slog.Logger
	source recordSource
	cache  cache.Cache
	ttl    time.Duration
}

// NewService creates a results service. ttl bounds how long a snapshot is
// served before the sheet is re-read.
func NewService(logger *slog.Logger, source recordSource, c cache.Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		log:    logger.With("service", "results"),
		source: source,
		cache:  c,
		ttl:    ttl,
	}
}

// Records returns the current snapshot, reading the sheet on a cache miss.
func (s *Service) Records(ctx context.Context) ([]domain.SurveyResponse, error) {
	if data, err := s.cache.Get(ctx, snapshotKey); err == nil {
		var records []domain.SurveyResponse
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
		// A corrupt entry falls through to a fresh fetch.
		s.log.WarnContext(ctx, "corrupt snapshot in cache, refetching")
	} else if !errors.Is(err, cache.ErrNotFound) {
		s.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
	}

	return s.Refresh(ctx)
}

// Refresh reads the sheet and replaces the cached snapshot. The periodic
// refresher calls this to keep the cache warm between requests.
func (s *Service) Refresh(ctx context.Context) ([]domain.SurveyResponse, error) {
	records, err := s.source.FetchResponses(ctx)
	if err != nil {
		return nil, fmt.Errorf("results.Refresh: %w", err)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("results.Refresh marshal: %w", err)
	}
	if err := s.cache.Set(ctx, snapshotKey, data, s.ttl); err != nil {
		// Serving stale-free data matters more than caching it.
		s.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "snapshot refreshed", slog.Int("records", len(records)))

	return records, nil
}
