package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

func (r *serviceRepository) Get(ctx context.Context, businessID, serviceID uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, business_id, name, price, duration_minutes,
		       COALESCE(buffer_minutes, 0) AS buffer_minutes, active,
		       created_at, updated_at
		FROM services
		WHERE id = $1 AND business_id = $2
	`
	var svc model.Service
	err := r.db.GetContext(ctx, &svc, query, serviceID, businessID)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("service", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &svc, nil
}

func (r *serviceRepository) List(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error) {
	query := `
		SELECT id, business_id, name, price, duration_minutes,
		       COALESCE(buffer_minutes, 0) AS buffer_minutes, active,
		       created_at, updated_at
		FROM services
		WHERE business_id = $1 AND active
		ORDER BY name ASC
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, businessID); err != nil {
		return nil, apperrors.Storage(err)
	}
	return services, nil
}
