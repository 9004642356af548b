//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
	GetByID(ctx context.Context, id string) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
	UpdateLocation(ctx context.Context, id string, point entities.GeoPoint) error

	// CountActiveDeliveries counts non-terminal deliveries referencing the
	// courier. Guards hard deletion of a courier that is still on a run.
	CountActiveDeliveries(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
