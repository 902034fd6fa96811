package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

const blockedDateColumns = `
	bd.id, bd.business_id, bd.staff_id,
	to_char(bd.date, 'YYYY-MM-DD') AS date,
	to_char(bd.start_time, 'HH24:MI') AS start_time,
	to_char(bd.end_time, 'HH24:MI') AS end_time,
	bd.reason, bd.created_at, bd.updated_at
`

func (r *blockedDateRepository) ListForDate(ctx context.Context, businessID uuid.UUID, date string) ([]*model.BlockedDate, error) {
	query := `
		SELECT ` + blockedDateColumns + `
		FROM blocked_dates bd
		WHERE bd.business_id = $1 AND bd.date = $2::date
	`
	var blocked []*model.BlockedDate
	if err := r.db.SelectContext(ctx, &blocked, query, businessID, date); err != nil {
		return nil, apperrors.Storage(err)
	}
	return blocked, nil
}

func (r *blockedDateRepository) List(ctx context.Context, businessID uuid.UUID, startDate, endDate string) ([]*model.BlockedDate, error) {
	query := `
		SELECT ` + blockedDateColumns + `, s.name AS staff_name
		FROM blocked_dates bd
		LEFT JOIN staff s ON bd.staff_id = s.id
		WHERE bd.business_id = $1
	`
	args := []interface{}{businessID}

	if startDate != "" {
		args = append(args, startDate)
		query += ` AND bd.date >= $2::date`
	}
	if endDate != "" {
		args = append(args, endDate)
		if startDate != "" {
			query += ` AND bd.date <= $3::date`
		} else {
			query += ` AND bd.date <= $2::date`
		}
	}

	query += ` ORDER BY bd.date ASC`

	var blocked []*model.BlockedDate
	if err := r.db.SelectContext(ctx, &blocked, query, args...); err != nil {
		return nil, apperrors.Storage(err)
	}
	return blocked, nil
}

func (r *blockedDateRepository) Create(ctx context.Context, blocked *model.BlockedDate) error {
	query := `
		INSERT INTO blocked_dates (
			id, business_id, staff_id, date, start_time, end_time, reason,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4::date, $5::time, $6::time, $7, $8, $9)
	`
	blocked.ID = uuid.New()
	blocked.CreatedAt = time.Now()
	blocked.UpdatedAt = blocked.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		blocked.ID,
		blocked.BusinessID,
		blocked.StaffID,
		blocked.Date,
		blocked.StartTime,
		blocked.EndTime,
		blocked.Reason,
		blocked.CreatedAt,
		blocked.UpdatedAt,
	)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *blockedDateRepository) Delete(ctx context.Context, businessID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM blocked_dates WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return apperrors.Storage(err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage(err)
	}
	if rows == 0 {
		return apperrors.NotFound("blocked date", nil)
	}
	return nil
}
