package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

func (r *businessRepository) Get(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	query := `
		SELECT id, name, slug, email, phone, location, working_hours,
		       COALESCE(buffer_minutes, 0) AS buffer_minutes,
		       created_at, updated_at
		FROM businesses
		WHERE id = $1
	`
	var business model.Business
	err := r.db.GetContext(ctx, &business, query, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("business", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &business, nil
}

func (r *businessRepository) GetBySlug(ctx context.Context, slug string) (*model.Business, error) {
	query := `
		SELECT id, name, slug, email, phone, location, working_hours,
		       COALESCE(buffer_minutes, 0) AS buffer_minutes,
		       created_at, updated_at
		FROM businesses
		WHERE slug = $1
	`
	var business model.Business
	err := r.db.GetContext(ctx, &business, query, slug)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("business", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &business, nil
}
