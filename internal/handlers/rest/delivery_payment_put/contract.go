//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_payment_put_test
package delivery_payment_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ChangePaymentStatus(ctx context.Context, id string, target entities.PaymentStatusType) (*entities.Delivery, error)
}
