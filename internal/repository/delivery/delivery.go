package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/assignment"
	"dispatch/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, customer_id, courier_id,
	pickup_text, pickup_lat, pickup_lng,
	dropoff_text, dropoff_lat, dropoff_lng,
	goods_type, goods_size, cost, status, payment_status,
	tag, tracking_id, receiver_phone, rating, history,
	assigned_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, record entities.Delivery) (*entities.Delivery, error) {
	historyJSON, err := json.Marshal(record.History)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	pickupText, pickupLat, pickupLng := fromAddress(record.Pickup)
	dropoffText, dropoffLat, dropoffLng := fromAddress(record.Dropoff)

	query := `
		INSERT INTO deliveries (id, customer_id, courier_id,
			pickup_text, pickup_lat, pickup_lng,
			dropoff_text, dropoff_lat, dropoff_lng,
			goods_type, goods_size, cost, status, payment_status,
			tag, tracking_id, receiver_phone, rating, history,
			assigned_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING ` + deliveryColumns

	row := r.querier.QueryRow(ctx, query,
		record.ID, record.CustomerID, record.CourierID,
		pickupText, pickupLat, pickupLng,
		dropoffText, dropoffLat, dropoffLng,
		record.GoodsType, record.GoodsSize, record.Cost,
		record.Status.String(), record.PaymentStatus.String(),
		record.Tag, record.TrackingID, record.ReceiverPhone, record.Rating,
		historyJSON, record.AssignedAt, record.CreatedAt, record.UpdatedAt,
	)

	created, err := scanDelivery(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("delivery %s already exists", record.ID)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	record, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}
	return record, nil
}

// List applies the filter predicates; no ordering is guaranteed, callers
// that need recency sort by CreatedAt themselves.
func (r *Repository) List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	builder := qb.Select(deliveryColumns).From("deliveries")

	if filter.StatusClass != nil {
		statuses := filter.StatusClass.Statuses()
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		builder = builder.Where(sq.Eq{"status": values})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.Tag != nil {
		builder = builder.Where(sq.Eq{"tag": *filter.Tag})
	}
	if filter.HasTag != nil {
		if *filter.HasTag {
			builder = builder.Where("tag IS NOT NULL")
		} else {
			builder = builder.Where("tag IS NULL")
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	return scanDeliveries(rows)
}

func (r *Repository) ListByCourier(ctx context.Context, courierID string) ([]entities.Delivery, error) {
	return r.List(ctx, entities.DeliveryFilter{CourierID: &courierID})
}

// UpdateFields is a merge-write over the mutable descriptive columns.
// status, payment_status, rating and history have dedicated methods and
// are never touched here, which keeps the history append-only.
func (r *Repository) UpdateFields(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	builder := qb.Update("deliveries")

	if deliveryModify.CustomerID != nil {
		builder = builder.Set("customer_id", *deliveryModify.CustomerID)
	}
	if deliveryModify.Pickup != nil {
		text, lat, lng := fromAddress(*deliveryModify.Pickup)
		builder = builder.Set("pickup_text", text).Set("pickup_lat", lat).Set("pickup_lng", lng)
	}
	if deliveryModify.Dropoff != nil {
		text, lat, lng := fromAddress(*deliveryModify.Dropoff)
		builder = builder.Set("dropoff_text", text).Set("dropoff_lat", lat).Set("dropoff_lng", lng)
	}
	if deliveryModify.GoodsType != nil {
		builder = builder.Set("goods_type", *deliveryModify.GoodsType)
	}
	if deliveryModify.GoodsSize != nil {
		builder = builder.Set("goods_size", *deliveryModify.GoodsSize)
	}
	if deliveryModify.Cost != nil {
		builder = builder.Set("cost", *deliveryModify.Cost)
	}
	if deliveryModify.TrackingID != nil {
		builder = builder.Set("tracking_id", *deliveryModify.TrackingID)
	}
	if deliveryModify.ReceiverPhone != nil {
		builder = builder.Set("receiver_phone", *deliveryModify.ReceiverPhone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModify.ID}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	updated, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}
	return updated, nil
}

// UpdateStatus writes the new status and appends the history entry in one
// statement, conditional on the current status so two racing transitions
// cannot both land.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to entities.DeliveryStatusType, entry entities.HistoryEntry) (*entities.Delivery, error) {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encode history entry: %w", err)
	}

	query := `
		UPDATE deliveries
		SET status = $2,
			history = history || $3::jsonb,
			updated_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING ` + deliveryColumns

	updated, err := scanDelivery(r.querier.QueryRow(ctx, query, id, to.String(), entryJSON, from.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.explainStatusMiss(ctx, id)
		}
		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}
	return updated, nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id string, target entities.PaymentStatusType) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET payment_status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + deliveryColumns

	updated, err := scanDelivery(r.querier.QueryRow(ctx, query, id, target.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update payment error: %w", err)
	}
	return updated, nil
}

func (r *Repository) SetRating(ctx context.Context, id string, rating int) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET rating = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + deliveryColumns

	updated, err := scanDelivery(r.querier.QueryRow(ctx, query, id, rating))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository set rating error: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM deliveries WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}
	return nil
}

// AssignWhereUnassigned binds the courier only while courier_id is still
// NULL; the losing writer of a race sees zero rows and gets
// ErrAlreadyAssigned instead of silently overwriting.
func (r *Repository) AssignWhereUnassigned(ctx context.Context, deliveryID, courierID string, assignedAt time.Time) (*entities.Delivery, error) {
	entryJSON, err := json.Marshal(entities.HistoryEntry{
		Status:    entities.DeliveryAssigned,
		Timestamp: assignedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode history entry: %w", err)
	}

	query := `
		UPDATE deliveries
		SET courier_id = $2,
			status = $3,
			assigned_at = $4,
			history = history || $5::jsonb,
			updated_at = NOW()
		WHERE id = $1 AND courier_id IS NULL
		RETURNING ` + deliveryColumns

	assigned, err := scanDelivery(r.querier.QueryRow(ctx, query,
		deliveryID, courierID, entities.DeliveryAssigned.String(), assignedAt, entryJSON))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.explainAssignMiss(ctx, deliveryID)
		}
		return nil, fmt.Errorf("unexpected delivery repository assign error: %w", err)
	}
	return assigned, nil
}

func (r *Repository) CountByTag(ctx context.Context, tag string) (total, assigned int64, err error) {
	query := `
		SELECT COUNT(*), COUNT(courier_id)
		FROM deliveries
		WHERE tag = $1`

	err = r.querier.QueryRow(ctx, query, tag).Scan(&total, &assigned)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected delivery repository count by tag error: %w", err)
	}
	return total, assigned, nil
}

// AssignBatch binds every unassigned item of the tag in one multi-row
// statement; the caller runs it inside a serializable transaction and
// verifies the row count against the batch size.
func (r *Repository) AssignBatch(ctx context.Context, tag, courierID string, assignedAt time.Time) (int64, error) {
	entryJSON, err := json.Marshal(entities.HistoryEntry{
		Status:    entities.DeliveryAssigned,
		Timestamp: assignedAt,
	})
	if err != nil {
		return 0, fmt.Errorf("encode history entry: %w", err)
	}

	query := `
		UPDATE deliveries
		SET courier_id = $2,
			status = $3,
			assigned_at = $4,
			history = history || $5::jsonb,
			updated_at = NOW()
		WHERE tag = $1 AND courier_id IS NULL`

	result, err := r.querier.Exec(ctx, query,
		tag, courierID, entities.DeliveryAssigned.String(), assignedAt, entryJSON)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository assign batch error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) explainStatusMiss(ctx context.Context, id string) error {
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return delivery.ErrDeliveryNotFound
	}
	// the row exists but its status moved under us
	return delivery.ErrInvalidTransition
}

func (r *Repository) explainAssignMiss(ctx context.Context, id string) error {
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return assignment.ErrDeliveryNotFound
	}
	return assignment.ErrAlreadyAssigned
}

func (r *Repository) exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM deliveries WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository exists error: %w", err)
	}
	return exists, nil
}

func scanDelivery(row pgx.Row) (*entities.Delivery, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID, &d.CustomerID, &d.CourierID,
		&d.PickupText, &d.PickupLat, &d.PickupLng,
		&d.DropoffText, &d.DropoffLat, &d.DropoffLng,
		&d.GoodsType, &d.GoodsSize, &d.Cost, &d.Status, &d.PaymentStatus,
		&d.Tag, &d.TrackingID, &d.ReceiverPhone, &d.Rating, &d.History,
		&d.AssignedAt, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&d)
}

func scanDeliveries(rows pgx.Rows) ([]entities.Delivery, error) {
	records := make([]entities.Delivery, 0, 16)
	for rows.Next() {
		record, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}
	return records, nil
}
