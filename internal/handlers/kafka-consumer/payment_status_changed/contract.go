//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_changed_test
package payment_status_changed

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
	ProcessPaymentStatusChange(ctx context.Context, deliveryID string, status entities.PaymentStatusType) (*entities.Delivery, error)
}
