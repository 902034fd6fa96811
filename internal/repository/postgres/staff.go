package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

func (r *staffRepository) Get(ctx context.Context, businessID, staffID uuid.UUID) (*model.Staff, error) {
	query := `
		SELECT id, business_id, name, email, phone, role, working_hours, active,
		       created_at, updated_at
		FROM staff
		WHERE id = $1 AND business_id = $2
	`
	var staff model.Staff
	err := r.db.GetContext(ctx, &staff, query, staffID, businessID)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("staff", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &staff, nil
}

func (r *staffRepository) CanPerform(ctx context.Context, staffID, serviceID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM staff_services
			WHERE staff_id = $1 AND service_id = $2
		)
	`
	var eligible bool
	if err := r.db.GetContext(ctx, &eligible, query, staffID, serviceID); err != nil {
		return false, apperrors.Storage(err)
	}
	return eligible, nil
}
