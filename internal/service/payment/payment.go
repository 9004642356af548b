package payment

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// Service applies payment provider events to deliveries. Events are
// at-least-once, so every applied write must be idempotent.
type Service struct {
	deliveryService DeliveryService
	statusFactory   HandlerFactory
}

func New(deliveryService DeliveryService, statusFactory HandlerFactory) *Service {
	return &Service{
		deliveryService: deliveryService,
		statusFactory:   statusFactory,
	}
}

func (s *Service) ProcessPaymentStatusChange(ctx context.Context, deliveryID string, status entities.PaymentStatusType) (*entities.Delivery, error) {
	if deliveryID == "" || status == "" {
		return nil, ErrMissingRequiredFields
	}

	record, err := s.deliveryService.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("resolve delivery: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// события с незнакомым статусом пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return record, nil
		}
		return record, err
	}

	if err := executeFn(ctx, record.ID); err != nil {
		return nil, err
	}

	return s.deliveryService.GetDelivery(ctx, deliveryID)
}
