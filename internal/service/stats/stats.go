package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Stats struct {
	repository Repository
	cache      Cache
	ttl        time.Duration
	log        logger.Logger
}

func New(repository Repository, cache Cache, ttl time.Duration, log logger.Logger) *Stats {
	return &Stats{
		repository: repository,
		cache:      cache,
		ttl:        ttl,
		log:        log.With(),
	}
}

// CourierStats returns the courier's delivery count and average rating.
// A cached value short-circuits the scan; on a miss the aggregate is
// recomputed from the courier's deliveries and cached with the TTL.
// Staleness is bounded by the TTL plus the explicit invalidation hook
// fired on terminal transitions and rating writes.
func (s *Stats) CourierStats(ctx context.Context, courierID string) (*entities.CourierStats, error) {
	if strings.TrimSpace(courierID) == "" {
		return nil, ErrInvalidCourierID
	}

	cached, err := s.cache.Get(ctx, courierID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		// a broken cache degrades to a scan, it must not fail the read
		s.log.With(
			logger.NewField("courier_id", courierID),
			logger.NewField("error", err),
		).Warn("stats cache read failed")
	}

	deliveries, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("scan courier deliveries: %w", err)
	}

	computed := Aggregate(courierID, deliveries)

	if err := s.cache.Set(ctx, computed, s.ttl); err != nil {
		s.log.With(
			logger.NewField("courier_id", courierID),
			logger.NewField("error", err),
		).Warn("stats cache write failed")
	}

	return &computed, nil
}

// Invalidate drops the cached aggregate so the next read recomputes.
func (s *Stats) Invalidate(ctx context.Context, courierID string) error {
	return s.cache.Invalidate(ctx, courierID)
}

// Aggregate counts every delivery of the courier and averages the
// ratings that are present and positive. A courier with no rated
// deliveries gets a nil average, never a zero.
func Aggregate(courierID string, deliveries []entities.Delivery) entities.CourierStats {
	computed := entities.CourierStats{
		CourierID:     courierID,
		DeliveryCount: len(deliveries),
	}

	var sum, rated int
	for _, d := range deliveries {
		if d.Rating != nil && *d.Rating > 0 {
			sum += *d.Rating
			rated++
		}
	}
	if rated > 0 {
		avg := float64(sum) / float64(rated)
		computed.AvgRating = &avg
	}
	return computed
}
