//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"dispatch/internal/entities"
)

type DeliveryService interface {
	GetDelivery(ctx context.Context, id string) (*entities.Delivery, error)
	ChangePaymentStatus(ctx context.Context, id string, target entities.PaymentStatusType) (*entities.Delivery, error)
}

type (
	ExecuteFn      func(ctx context.Context, deliveryID string) error
	HandlerFactory interface {
		GetHandler(status entities.PaymentStatusType) (ExecuteFn, error)
	}
)
