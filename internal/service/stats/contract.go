//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	ListByCourier(ctx context.Context, courierID string) ([]entities.Delivery, error)
}

// Cache is the explicit key -> (value, expiry) abstraction around the
// computed aggregate. A hit short-circuits the delivery scan entirely.
type Cache interface {
	Get(ctx context.Context, courierID string) (*entities.CourierStats, error)
	Set(ctx context.Context, stats entities.CourierStats, ttl time.Duration) error
	Invalidate(ctx context.Context, courierID string) error
}
