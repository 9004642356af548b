//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	// AssignWhereUnassigned binds the courier, sets status/assigned_at and
	// appends the history entry in one conditional statement that succeeds
	// only while courier_id is still NULL. Racing staff members get exactly
	// one winner.
	AssignWhereUnassigned(ctx context.Context, deliveryID, courierID string, assignedAt time.Time) (*entities.Delivery, error)

	CountByTag(ctx context.Context, tag string) (total, assigned int64, err error)
	AssignBatch(ctx context.Context, tag, courierID string, assignedAt time.Time) (int64, error)
}

type CourierService interface {
	GetCourier(ctx context.Context, id string) (*entities.Courier, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
