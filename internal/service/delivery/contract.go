//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	UpdateFields(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)

	// UpdateStatus moves the delivery from one status to another and appends
	// the history entry in the same statement. The write is conditional on the
	// current status so concurrent writers cannot interleave transitions.
	UpdateStatus(ctx context.Context, id string, from, to entities.DeliveryStatusType, entry entities.HistoryEntry) (*entities.Delivery, error)
	UpdatePaymentStatus(ctx context.Context, id string, target entities.PaymentStatusType) (*entities.Delivery, error)
	SetRating(ctx context.Context, id string, rating int) (*entities.Delivery, error)

	Delete(ctx context.Context, id string) error
}

// StatsInvalidator drops the cached rating aggregate of a courier.
// Fired on transitions into a terminal status and on rating writes.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, courierID string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
