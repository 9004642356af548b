package board_metrics

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Service interface {
	Board(ctx context.Context) (*entities.Board, error)
}

// BoardMetrics periodically recomputes the dispatch board and exports
// the bucket sizes, so operators can watch courier availability without
// hitting the board endpoint.
type BoardMetrics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewBoardMetrics(log logger.Logger, service Service, interval time.Duration) *BoardMetrics {
	return &BoardMetrics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BoardMetrics) TTL() time.Duration {
	return b.interval
}

func (b *BoardMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	board, err := b.service.Board(ctxWithTimeout)
	if err != nil {
		return err
	}

	counts := map[entities.CourierBucket]int{
		entities.BucketOffline:    0,
		entities.BucketOnDelivery: 0,
		entities.BucketAvailable:  0,
	}
	for _, bucket := range board.Buckets {
		counts[bucket]++
	}

	for bucket, count := range counts {
		BoardBucketSize.WithLabelValues(bucket.String()).Set(float64(count))
	}
	BoardLinksTotal.Set(float64(len(board.Links)))

	b.log.With(
		logger.NewField("offline", counts[entities.BucketOffline]),
		logger.NewField("on_delivery", counts[entities.BucketOnDelivery]),
		logger.NewField("available", counts[entities.BucketAvailable]),
		logger.NewField("links", len(board.Links)),
	).Debug("board metrics refreshed")

	return nil
}

func (b *BoardMetrics) Info() string {
	return "dispatch board metrics"
}
