package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
)

const promotionColumns = `
	id, business_id, code, discount_type, discount_value,
	to_char(valid_from, 'YYYY-MM-DD') AS valid_from,
	to_char(valid_to, 'YYYY-MM-DD') AS valid_to,
	max_uses, current_uses, applicable_services, active,
	created_at, updated_at
`

func (r *promotionRepository) Create(ctx context.Context, promo *model.Promotion) error {
	query := `
		INSERT INTO promotions (
			id, business_id, code, discount_type, discount_value,
			valid_from, valid_to, max_uses, applicable_services, active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6::date, $7::date, $8, $9, true, $10, $10)
	`
	promo.ID = uuid.New()
	promo.Code = strings.ToUpper(promo.Code)
	promo.CreatedAt = time.Now()
	promo.UpdatedAt = promo.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		promo.ID,
		promo.BusinessID,
		promo.Code,
		promo.DiscountType,
		promo.DiscountValue,
		promo.ValidFrom,
		promo.ValidTo,
		promo.MaxUses,
		promo.ApplicableServices,
		promo.CreatedAt,
	)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *promotionRepository) List(ctx context.Context, businessID uuid.UUID) ([]*model.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	var promos []*model.Promotion
	if err := r.db.SelectContext(ctx, &promos, query, businessID); err != nil {
		return nil, apperrors.Storage(err)
	}
	return promos, nil
}

func (r *promotionRepository) FindValid(ctx context.Context, businessID uuid.UUID, code, date string) (*model.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE business_id = $1 AND code = $2
		  AND active
		  AND valid_from <= $3::date AND valid_to >= $3::date
		  AND (max_uses IS NULL OR current_uses < max_uses)
	`
	var promo model.Promotion
	err := r.db.GetContext(ctx, &promo, query, businessID, strings.ToUpper(code), date)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("promotion", err)
	}
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return &promo, nil
}

// IncrementUsage bumps the usage counter, re-checking the cap so a code
// cannot run past max_uses. Runs after the booking commit; the booking that
// carries the promotion FK never rolls back on a failed increment.
func (r *promotionRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE promotions SET current_uses = current_uses + 1, updated_at = $1
		 WHERE id = $2 AND (max_uses IS NULL OR current_uses < max_uses)`,
		time.Now(), id,
	)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}
