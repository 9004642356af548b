package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, phone, email,
	vehicle_type, vehicle_plate, vehicle_model, vehicle_color, vehicle_verified,
	is_active, verified, reported_status,
	location_lat, location_lng, location_at,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	id := uuid.NewString()
	if courierModify.ID != nil {
		id = *courierModify.ID
	}

	vehicle := entities.Vehicle{}
	if courierModify.Vehicle != nil {
		vehicle = *courierModify.Vehicle
	}
	reported := entities.ReportedOffline
	if courierModify.ReportedStatus != nil {
		reported = *courierModify.ReportedStatus
	}
	isActive := false
	if courierModify.IsActive != nil {
		isActive = *courierModify.IsActive
	}

	var email string
	if courierModify.Email != nil {
		email = *courierModify.Email
	}

	query := `
		INSERT INTO couriers (id, name, phone, email,
			vehicle_type, vehicle_plate, vehicle_model, vehicle_color, vehicle_verified,
			is_active, verified, reported_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + courierColumns

	created, err := scanCourier(r.querier.QueryRow(ctx, query,
		id, courierModify.Name, courierModify.Phone, email,
		vehicle.Type, vehicle.Plate, vehicle.Model, vehicle.Color, vehicle.Verified,
		isActive, false, reported.String(),
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	builder := qb.Update("couriers")

	if courierModify.Name != nil {
		builder = builder.Set("name", *courierModify.Name)
	}
	if courierModify.Phone != nil {
		builder = builder.Set("phone", *courierModify.Phone)
	}
	if courierModify.Email != nil {
		builder = builder.Set("email", *courierModify.Email)
	}
	if courierModify.Vehicle != nil {
		builder = builder.
			Set("vehicle_type", courierModify.Vehicle.Type).
			Set("vehicle_plate", courierModify.Vehicle.Plate).
			Set("vehicle_model", courierModify.Vehicle.Model).
			Set("vehicle_color", courierModify.Vehicle.Color).
			Set("vehicle_verified", courierModify.Vehicle.Verified)
	}
	if courierModify.IsActive != nil {
		builder = builder.Set("is_active", *courierModify.IsActive)
	}
	if courierModify.Verified != nil {
		builder = builder.Set("verified", *courierModify.Verified)
	}
	if courierModify.ReportedStatus != nil {
		builder = builder.Set("reported_status", courierModify.ReportedStatus.String())
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModify.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	updated, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}
	return updated, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + ` FROM couriers WHERE id = $1`

	record, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}
	return record, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + ` FROM couriers ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		if err := scanCourierInto(rows, &courierModel); err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	return ToDomainList(courierModels), nil
}

func (r *Repository) UpdateLocation(ctx context.Context, id string, point entities.GeoPoint) error {
	query := `
		UPDATE couriers
		SET location_lat = $2,
			location_lng = $3,
			location_at = $4,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, point.Lat, point.Lng, point.Timestamp)
	if err != nil {
		return fmt.Errorf("unexpected courier repository update location error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

func (r *Repository) CountActiveDeliveries(ctx context.Context, id string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE courier_id = $1
		  AND status NOT IN ('delivered', 'received', 'cancelled')`

	var count int64
	err := r.querier.QueryRow(ctx, query, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository count active error: %w", err)
	}
	return count, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM couriers WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected courier repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}
	return nil
}

func scanCourier(row pgx.Row) (*entities.Courier, error) {
	var c CourierDB
	if err := scanCourierInto(row, &c); err != nil {
		return nil, err
	}
	return ToDomain(&c), nil
}

func scanCourierInto(row pgx.Row, c *CourierDB) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email,
		&c.VehicleType, &c.VehiclePlate, &c.VehicleModel, &c.VehicleColor, &c.VehicleVerified,
		&c.IsActive, &c.Verified, &c.ReportedStatus,
		&c.LocationLat, &c.LocationLng, &c.LocationAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
}
