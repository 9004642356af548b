package payment_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/payment"
)

type StatusHandlerFactory struct {
	deliveryService payment.DeliveryService
}

func NewStatusHandlerFactory(deliveryService payment.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PaymentStatusType) (payment.ExecuteFn, error) {
	switch status {
	case entities.PaymentPaid:
		return f.paidHandler, nil
	case entities.PaymentUnpaid:
		return f.unpaidHandler, nil
	case entities.PaymentPartiallyPaid:
		return f.partiallyPaidHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", payment.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) paidHandler(ctx context.Context, deliveryID string) error {
	_, err := f.deliveryService.ChangePaymentStatus(ctx, deliveryID, entities.PaymentPaid)
	if err != nil {
		return fmt.Errorf("mark delivery %s paid: %w", deliveryID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) unpaidHandler(ctx context.Context, deliveryID string) error {
	_, err := f.deliveryService.ChangePaymentStatus(ctx, deliveryID, entities.PaymentUnpaid)
	if err != nil {
		return fmt.Errorf("mark delivery %s unpaid: %w", deliveryID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) partiallyPaidHandler(ctx context.Context, deliveryID string) error {
	_, err := f.deliveryService.ChangePaymentStatus(ctx, deliveryID, entities.PaymentPartiallyPaid)
	if err != nil {
		return fmt.Errorf("mark delivery %s partially paid: %w", deliveryID, err)
	}
	return nil
}
