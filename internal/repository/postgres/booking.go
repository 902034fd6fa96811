package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/repository"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

type bookingRepository struct {
	BaseRepository
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{BaseRepository: NewBaseRepository(db)}
}

const bookingColumns = `
	b.id, b.business_id, b.service_id, b.customer_id, b.staff_id,
	to_char(b.date, 'YYYY-MM-DD') AS date,
	to_char(b.time, 'HH24:MI') AS time,
	to_char(b.end_time, 'HH24:MI') AS end_time,
	b.status, b.notes, b.promotion_id, b.created_at, b.updated_at
`

// Create commits a booking under the serialized protocol: an advisory lock
// over the (business, date) bucket, authoritative duration/buffer resolution,
// staff eligibility, the overlap re-check, customer find-or-create by phone,
// the insert, and the outbox event, all in one transaction. The lock makes
// concurrent commits for the same day queue up, so exactly one of two racing
// requests for an interval wins and the other observes Conflict.
//
// The lock must not depend on existing booking rows: a FOR UPDATE scan over
// the bucket locks nothing on an empty day and lets two first-of-day commits
// race past each other. pg_advisory_xact_lock holds until commit or rollback
// and needs no row to exist.
func (r *bookingRepository) Create(ctx context.Context, params *repository.CreateBookingParams) (*model.Booking, error) {
	var booking *model.Booking

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1::text || '|' || $2, 0))`,
			params.BusinessID, params.Date,
		); err != nil {
			return apperrors.Storage(fmt.Errorf("failed to lock day bucket: %w", err))
		}

		var svc struct {
			DurationMinutes int `db:"duration_minutes"`
			BufferMinutes   int `db:"buffer_minutes"`
		}
		err := tx.GetContext(ctx, &svc,
			`SELECT duration_minutes, COALESCE(buffer_minutes, 0) AS buffer_minutes
			 FROM services WHERE id = $1 AND business_id = $2`,
			params.ServiceID, params.BusinessID,
		)
		if err == sql.ErrNoRows {
			return apperrors.NotFound("service", err)
		}
		if err != nil {
			return apperrors.Storage(err)
		}

		var businessBuffer int
		err = tx.GetContext(ctx, &businessBuffer,
			`SELECT COALESCE(buffer_minutes, 0) FROM businesses WHERE id = $1`,
			params.BusinessID,
		)
		if err == sql.ErrNoRows {
			return apperrors.NotFound("business", err)
		}
		if err != nil {
			return apperrors.Storage(err)
		}

		// The more restrictive buffer wins.
		buffer := svc.BufferMinutes
		if businessBuffer > buffer {
			buffer = businessBuffer
		}

		if params.StaffID != nil {
			var eligible bool
			err = tx.GetContext(ctx, &eligible,
				`SELECT EXISTS (
					SELECT 1 FROM staff s
					JOIN staff_services ss ON ss.staff_id = s.id
					WHERE s.id = $1 AND s.business_id = $2 AND s.active
					  AND ss.service_id = $3
				)`,
				*params.StaffID, params.BusinessID, params.ServiceID,
			)
			if err != nil {
				return apperrors.Storage(err)
			}
			if !eligible {
				return apperrors.InvalidAssignment("staff member cannot perform this service", nil)
			}
		}

		if err := r.checkOverlap(ctx, tx, params, svc.DurationMinutes, buffer); err != nil {
			return err
		}

		customerID, err := upsertCustomer(ctx, tx, params.CustomerName, params.CustomerPhone)
		if err != nil {
			return err
		}

		now := time.Now()
		booking = &model.Booking{
			Base:        model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			BusinessID:  params.BusinessID,
			ServiceID:   params.ServiceID,
			CustomerID:  customerID,
			StaffID:     params.StaffID,
			Date:        params.Date,
			Time:        params.Time,
			Status:      model.BookingStatusBooked,
			Notes:       params.Notes,
			PromotionID: params.PromotionID,
		}

		err = tx.GetContext(ctx, &booking.EndTime,
			`INSERT INTO bookings (
				id, business_id, service_id, customer_id, staff_id,
				date, time, end_time, status, notes, promotion_id,
				created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5,
				$6::date, $7::time, $7::time + make_interval(mins => $8), $9, $10, $11,
				$12, $12
			)
			RETURNING to_char(end_time, 'HH24:MI')`,
			booking.ID,
			booking.BusinessID,
			booking.ServiceID,
			booking.CustomerID,
			booking.StaffID,
			booking.Date,
			booking.Time,
			svc.DurationMinutes,
			booking.Status,
			booking.Notes,
			booking.PromotionID,
			now,
		)
		if err != nil {
			return apperrors.Storage(fmt.Errorf("failed to create booking: %w", err))
		}

		return insertOutboxEvent(ctx, tx, model.EventBookingCreated, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// checkOverlap is the authoritative conflict test, run while the day bucket
// is locked. The candidate interval is extended by the buffer at its tail and
// every existing booking's occupied range by the same buffer, half-open on
// both sides so touching intervals pass. Staff-scoped bookings only collide
// within the same staff; unassigned bookings only with other unassigned ones.
func (r *bookingRepository) checkOverlap(ctx context.Context, tx *sqlx.Tx, params *repository.CreateBookingParams, duration, buffer int) error {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE business_id = $1 AND date = $2::date
			  AND status <> 'Cancelled'
			  AND time < $3::time + make_interval(mins => $4)
			  AND end_time + make_interval(mins => $5) > $3::time
	`
	args := []interface{}{params.BusinessID, params.Date, params.Time, duration + buffer, buffer}

	if params.StaffID != nil {
		query += ` AND staff_id = $6`
		args = append(args, *params.StaffID)
	} else {
		query += ` AND staff_id IS NULL`
	}
	query += `)`

	var conflict bool
	if err := tx.GetContext(ctx, &conflict, query, args...); err != nil {
		return apperrors.Storage(fmt.Errorf("failed to check conflicts: %w", err))
	}
	if conflict {
		return apperrors.Conflict("this time slot is no longer available", nil)
	}
	return nil
}

// upsertCustomer finds or creates a guest customer. Phone is the stable
// identity; the name follows last-write-wins.
func upsertCustomer(ctx context.Context, tx *sqlx.Tx, name, phone string) (uuid.UUID, error) {
	var customerID uuid.UUID
	err := tx.GetContext(ctx, &customerID, `SELECT id FROM customers WHERE phone = $1`, phone)
	if err == sql.ErrNoRows {
		customerID = uuid.New()
		now := time.Now()
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO customers (id, name, phone, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
			customerID, name, phone, now,
		); err != nil {
			return uuid.Nil, apperrors.Storage(fmt.Errorf("failed to create customer: %w", err))
		}
		return customerID, nil
	}
	if err != nil {
		return uuid.Nil, apperrors.Storage(err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE customers SET name = $1, updated_at = $2 WHERE id = $3`,
		name, time.Now(), customerID,
	); err != nil {
		return uuid.Nil, apperrors.Storage(fmt.Errorf("failed to update customer: %w", err))
	}
	return customerID, nil
}

func insertOutboxEvent(ctx context.Context, tx *sqlx.Tx, eventType string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Storage(fmt.Errorf("failed to marshal event payload: %w", err))
	}
	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO outbox_events (id, event_type, payload, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)`,
		uuid.New(), eventType, body, model.OutboxStatusPending, now,
	); err != nil {
		return apperrors.Storage(fmt.Errorf("failed to create outbox event: %w", err))
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, businessID, id uuid.UUID) (*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `,
		       s.name AS service_name, s.price AS service_price,
		       c.name AS customer_name, c.phone AS customer_phone,
		       st.name AS staff_name
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		JOIN customers c ON b.customer_id = c.id
		LEFT JOIN staff st ON b.staff_id = st.id
		WHERE b.id = $1 AND b.business_id = $2
	`
	var booking model.Booking
	err := r.db.GetContext(ctx, &booking, query, id, businessID)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("booking", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context, businessID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `,
		       s.name AS service_name, s.price AS service_price,
		       c.name AS customer_name, c.phone AS customer_phone,
		       st.name AS staff_name
		FROM bookings b
		JOIN services s ON b.service_id = s.id
		JOIN customers c ON b.customer_id = c.id
		LEFT JOIN staff st ON b.staff_id = st.id
		WHERE b.business_id = $1
	`
	args := []interface{}{businessID}
	argCount := 2

	if filters != nil && filters.Date != "" {
		query += fmt.Sprintf(" AND b.date = $%d::date", argCount)
		args = append(args, filters.Date)
		argCount++
	}
	if filters != nil && filters.Status != "" {
		query += fmt.Sprintf(" AND b.status = $%d", argCount)
		args = append(args, filters.Status)
		argCount++
	}

	query += " ORDER BY b.date DESC, b.time ASC"

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, apperrors.Storage(err)
	}
	return bookings, nil
}

func (r *bookingRepository) ListForDay(ctx context.Context, businessID uuid.UUID, date string, staffID *uuid.UUID) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.business_id = $1 AND b.date = $2::date
		  AND b.status <> 'Cancelled'
	`
	args := []interface{}{businessID, date}

	if staffID != nil {
		query += ` AND b.staff_id = $3`
		args = append(args, *staffID)
	} else {
		query += ` AND b.staff_id IS NULL`
	}
	query += ` ORDER BY b.time ASC`

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, apperrors.Storage(err)
	}
	return bookings, nil
}

// UpdateStatus moves a booking out of the Booked state. The guard on the
// current status makes the transition atomic: a booking that already left
// Booked cannot be moved again.
func (r *bookingRepository) UpdateStatus(ctx context.Context, businessID, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	var booking model.Booking

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &booking,
			`UPDATE bookings b SET status = $1, updated_at = $2
			 WHERE b.id = $3 AND b.business_id = $4 AND b.status = $5
			 RETURNING `+bookingColumns,
			status, time.Now(), id, businessID, model.BookingStatusBooked,
		)
		if err == sql.ErrNoRows {
			var current model.BookingStatus
			err = tx.GetContext(ctx, &current,
				`SELECT status FROM bookings WHERE id = $1 AND business_id = $2`, id, businessID)
			if err == sql.ErrNoRows {
				return apperrors.NotFound("booking", err)
			}
			if err != nil {
				return apperrors.Storage(err)
			}
			return apperrors.Conflict(fmt.Sprintf("booking is already %s", current), nil)
		}
		if err != nil {
			return apperrors.Storage(err)
		}

		return insertOutboxEvent(ctx, tx, model.EventBookingStatusChanged, &booking)
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
