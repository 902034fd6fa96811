package promotion

import (
	"context"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/repository"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
	"github.com/salonbase/booking-api/pkg/logger"
)

type Service struct {
	repo   repository.PromotionRepository
	logger *logger.Logger
}

func NewService(repo repository.PromotionRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreatePromotion(ctx context.Context, businessID uuid.UUID, req *model.CreatePromotionRequest) (*model.Promotion, error) {
	promo := &model.Promotion{
		BusinessID:         businessID,
		Code:               req.Code,
		DiscountType:       model.DiscountType(req.DiscountType),
		DiscountValue:      req.DiscountValue,
		ValidFrom:          req.ValidFrom,
		ValidTo:            req.ValidTo,
		MaxUses:            req.MaxUses,
		ApplicableServices: req.ApplicableServices,
		Active:             true,
	}
	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *Service) ListPromotions(ctx context.Context, businessID uuid.UUID) ([]*model.Promotion, error) {
	return s.repo.List(ctx, businessID)
}

// Validate resolves a code to a live promotion: active, inside its validity
// window, under its usage cap, and covering the requested service. Any miss
// is reported as invalid input so booking callers surface one clear message.
func (s *Service) Validate(ctx context.Context, businessID uuid.UUID, code string, serviceID uuid.UUID, date string) (*model.Promotion, error) {
	promo, err := s.repo.FindValid(ctx, businessID, code, date)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrNotFound {
			return nil, apperrors.InvalidInput("invalid or expired promotion code", err)
		}
		return nil, err
	}
	if !promo.AppliesTo(serviceID) {
		return nil, apperrors.InvalidInput("promotion does not apply to this service", nil)
	}
	return promo, nil
}

// RecordUse bumps the usage counter. Best-effort: double increments under
// concurrent redemption of a near-exhausted code are tolerated.
func (s *Service) RecordUse(ctx context.Context, id uuid.UUID) error {
	return s.repo.IncrementUsage(ctx, id)
}
