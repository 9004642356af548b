package assignment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
)

type Assignment struct {
	repository     Repository
	courierService CourierService
	txManager      TxManager
}

func New(repository Repository, courierService CourierService, txManager TxManager) *Assignment {
	return &Assignment{
		repository:     repository,
		courierService: courierService,
		txManager:      txManager,
	}
}

// Assign binds one courier to one unassigned delivery. On success the
// delivery moves to assigned, assigned_at is set and the history entry is
// appended, all in a single conditional write.
func (s *Assignment) Assign(ctx context.Context, deliveryID, courierID string) (*entities.Delivery, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}
	if strings.TrimSpace(courierID) == "" {
		return nil, ErrInvalidCourierID
	}

	var assigned *entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.courierService.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("resolve courier: %w", err)
		}

		assigned, err = s.repository.AssignWhereUnassigned(ctx, deliveryID, courierID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("assign delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

// AssignBatch binds one courier to every delivery sharing the tag. The
// batch is one physical pickup run, so the binding is all-or-nothing: a
// batch with any item already assigned is refused, and a failed write
// rolls back without any partial state becoming observable.
func (s *Assignment) AssignBatch(ctx context.Context, tag, courierID string) (int64, error) {
	if strings.TrimSpace(tag) == "" {
		return 0, ErrInvalidTag
	}
	if strings.TrimSpace(courierID) == "" {
		return 0, ErrInvalidCourierID
	}

	var itemsAssigned int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.courierService.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("resolve courier: %w", err)
		}

		total, alreadyAssigned, err := s.repository.CountByTag(ctx, tag)
		if err != nil {
			return fmt.Errorf("inspect batch: %w", err)
		}
		if total == 0 {
			return fmt.Errorf("%w: tag %s", ErrDeliveryNotFound, tag)
		}
		if alreadyAssigned > 0 {
			return fmt.Errorf("%w: %d of %d batch items", ErrAlreadyAssigned, alreadyAssigned, total)
		}

		rows, err := s.repository.AssignBatch(ctx, tag, courierID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBatchWriteFailed, err)
		}
		if rows != total {
			return fmt.Errorf("%w: bound %d of %d items", ErrBatchWriteFailed, rows, total)
		}

		itemsAssigned = rows
		return nil
	})
	if err != nil {
		return 0, err
	}
	return itemsAssigned, nil
}
