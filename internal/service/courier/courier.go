package courier

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Name == nil || courierModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.ReportedStatus != nil && !isValidReportedStatus(*courierModify.ReportedStatus) {
		return nil, ErrInvalidStatus
	}

	created, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}
	return created, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.Email == nil &&
		courierModify.Vehicle == nil &&
		courierModify.IsActive == nil &&
		courierModify.Verified == nil &&
		courierModify.ReportedStatus == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.ReportedStatus != nil && !isValidReportedStatus(*courierModify.ReportedStatus) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("update courier: %w", err)
	}
	return updated, nil
}

func (s *Courier) GetCourier(ctx context.Context, id string) (*entities.Courier, error) {
	record, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return record, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	records, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}
	return records, nil
}

// UpdateLocation is the mobile client's write path; the engine itself
// only ever reads the location.
func (s *Courier) UpdateLocation(ctx context.Context, id string, point entities.GeoPoint) error {
	if !isValidLocation(point) {
		return ErrInvalidLocation
	}

	err := s.repository.UpdateLocation(ctx, id, point)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// DeleteCourier refuses to remove a courier that any non-terminal
// delivery still references, so delivery records never dangle mid-run.
func (s *Courier) DeleteCourier(ctx context.Context, id string) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		active, err := s.repository.CountActiveDeliveries(ctx, id)
		if err != nil {
			return fmt.Errorf("count active deliveries: %w", err)
		}
		if active > 0 {
			return ErrCourierHasActiveDeliveries
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete courier: %w", err)
		}
		return nil
	})
}
