package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Delivery struct {
	repository Repository
	stats      StatsInvalidator
	txManager  TxManager
	log        logger.Logger
}

func New(repository Repository, stats StatsInvalidator, txManager TxManager, log logger.Logger) *Delivery {
	return &Delivery{
		repository: repository,
		stats:      stats,
		txManager:  txManager,
		log:        log.With(),
	}
}

func (s *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if !hasText(deliveryModify.CustomerID) ||
		!hasAddress(deliveryModify.Pickup) ||
		!hasAddress(deliveryModify.Dropoff) ||
		!hasText(deliveryModify.ReceiverPhone) ||
		!hasText(deliveryModify.GoodsType) {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	record := newPendingDelivery(deliveryModify, now)

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return created, nil
}

// CreateBatch creates one delivery per item, all sharing the customer,
// the pickup point and a freshly generated tag. The batch is written in
// one transaction: either the whole pickup run exists or none of it.
func (s *Delivery) CreateBatch(ctx context.Context, batch entities.BatchCreate) ([]entities.Delivery, error) {
	if batch.CustomerID == "" || batch.Pickup.Text == "" || batch.GoodsType == "" {
		return nil, ErrMissingRequiredFields
	}
	if len(batch.Items) == 0 {
		return nil, ErrEmptyBatch
	}
	for _, item := range batch.Items {
		if item.Dropoff.Text == "" || item.ReceiverPhone == "" {
			return nil, ErrMissingRequiredFields
		}
	}

	tag := uuid.NewString()
	now := time.Now().UTC()

	created := make([]entities.Delivery, 0, len(batch.Items))
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, item := range batch.Items {
			item := item
			modify := entities.DeliveryModify{
				CustomerID:    &batch.CustomerID,
				Pickup:        &batch.Pickup,
				Dropoff:       &item.Dropoff,
				GoodsType:     &batch.GoodsType,
				GoodsSize:     &batch.GoodsSize,
				Cost:          &batch.Cost,
				Tag:           &tag,
				ReceiverPhone: &item.ReceiverPhone,
			}

			record, err := s.repository.Create(ctx, newPendingDelivery(modify, now))
			if err != nil {
				return fmt.Errorf("create batch item: %w", err)
			}
			created = append(created, *record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Delivery) GetDelivery(ctx context.Context, id string) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return record, nil
}

func (s *Delivery) ListDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	records, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return records, nil
}

// ChangeStatus advances a delivery along the forward-only state machine.
// Backward moves, skips and writes out of a terminal state are rejected.
// The assigned status is reserved for the assignment flow, which binds
// the courier in the same write.
func (s *Delivery) ChangeStatus(ctx context.Context, id string, target entities.DeliveryStatusType) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidStatus(target) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, target)
	}
	if target == entities.DeliveryAssigned {
		return nil, fmt.Errorf("%w: assigned requires a courier", ErrInvalidTransition)
	}

	var updated *entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if !canTransition(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}

		entry := entities.HistoryEntry{Status: target, Timestamp: time.Now().UTC()}
		updated, err = s.repository.UpdateStatus(ctx, id, current.Status, target, entry)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if target.IsTerminal() {
		s.invalidateStats(ctx, updated.CourierID)
	}
	return updated, nil
}

// ChangePaymentStatus is independent of the delivery state machine:
// any of the four payment states may follow any other.
func (s *Delivery) ChangePaymentStatus(ctx context.Context, id string, target entities.PaymentStatusType) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidPaymentStatus(target) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPaymentStatus, target)
	}

	updated, err := s.repository.UpdatePaymentStatus(ctx, id, target)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}
	return updated, nil
}

func (s *Delivery) SetRating(ctx context.Context, id string, rating int) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidRating(rating) {
		return nil, ErrInvalidRating
	}

	var updated *entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if current.Status != entities.DeliveryDelivered && current.Status != entities.DeliveryReceived {
			return ErrNotCompleted
		}

		updated, err = s.repository.SetRating(ctx, id, rating)
		if err != nil {
			return fmt.Errorf("set rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, updated.CourierID)
	return updated, nil
}

func (s *Delivery) UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModify.ID == nil || !isValidDeliveryID(*deliveryModify.ID) {
		return nil, ErrInvalidDeliveryID
	}

	updated, err := s.repository.UpdateFields(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("update delivery: %w", err)
	}
	return updated, nil
}

// DeleteDelivery is a hard delete for administrative cleanup; it is not
// part of the lifecycle and there is no undo.
func (s *Delivery) DeleteDelivery(ctx context.Context, id string) error {
	if !isValidDeliveryID(id) {
		return ErrInvalidDeliveryID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

// invalidateStats is best effort: a missed invalidation only extends the
// staleness window to the cache TTL.
func (s *Delivery) invalidateStats(ctx context.Context, courierID *string) {
	if courierID == nil {
		return
	}
	if err := s.stats.Invalidate(ctx, *courierID); err != nil {
		s.log.With(
			logger.NewField("courier_id", *courierID),
			logger.NewField("error", err),
		).Warn("stats cache invalidation failed")
	}
}

func newPendingDelivery(m entities.DeliveryModify, now time.Time) entities.Delivery {
	record := entities.Delivery{
		ID:            uuid.NewString(),
		Status:        entities.DeliveryPending,
		PaymentStatus: entities.PaymentPending,
		History: []entities.HistoryEntry{
			{Status: entities.DeliveryPending, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if m.CustomerID != nil {
		record.CustomerID = *m.CustomerID
	}
	if m.Pickup != nil {
		record.Pickup = *m.Pickup
	}
	if m.Dropoff != nil {
		record.Dropoff = *m.Dropoff
	}
	if m.GoodsType != nil {
		record.GoodsType = *m.GoodsType
	}
	if m.GoodsSize != nil {
		record.GoodsSize = *m.GoodsSize
	}
	if m.Cost != nil {
		record.Cost = *m.Cost
	}
	record.Tag = m.Tag
	record.TrackingID = m.TrackingID
	if m.ReceiverPhone != nil {
		record.ReceiverPhone = *m.ReceiverPhone
	}
	return record
}
