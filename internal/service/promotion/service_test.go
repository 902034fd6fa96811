package promotion

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbase/booking-api/internal/model"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
	"github.com/salonbase/booking-api/pkg/logger"
)

type fakePromotionRepo struct {
	promos     map[string]*model.Promotion
	increments map[uuid.UUID]int
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{
		promos:     make(map[string]*model.Promotion),
		increments: make(map[uuid.UUID]int),
	}
}

func (f *fakePromotionRepo) Create(_ context.Context, promo *model.Promotion) error {
	promo.ID = uuid.New()
	f.promos[promo.Code] = promo
	return nil
}

func (f *fakePromotionRepo) List(_ context.Context, _ uuid.UUID) ([]*model.Promotion, error) {
	var out []*model.Promotion
	for _, p := range f.promos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePromotionRepo) FindValid(_ context.Context, _ uuid.UUID, code, _ string) (*model.Promotion, error) {
	promo, ok := f.promos[code]
	if !ok {
		return nil, apperrors.NotFound("promotion", nil)
	}
	return promo, nil
}

func (f *fakePromotionRepo) IncrementUsage(_ context.Context, id uuid.UUID) error {
	f.increments[id]++
	return nil
}

func newService(repo *fakePromotionRepo) *Service {
	return NewService(repo, &logger.Logger{ZL: zerolog.Nop()})
}

func TestValidateUnknownCodeIsInvalidInput(t *testing.T) {
	svc := newService(newFakePromotionRepo())

	_, err := svc.Validate(context.Background(), uuid.New(), "NOPE", uuid.New(), "2026-01-05")
	assert.Equal(t, apperrors.ErrInvalidInput, apperrors.CodeOf(err))
}

func TestValidateServiceAllowList(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := newService(repo)

	allowed := uuid.New()
	other := uuid.New()
	repo.promos["SPRING"] = &model.Promotion{
		Base:               model.Base{ID: uuid.New()},
		Code:               "SPRING",
		ApplicableServices: []string{allowed.String()},
	}

	promo, err := svc.Validate(context.Background(), uuid.New(), "SPRING", allowed, "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "SPRING", promo.Code)

	_, err = svc.Validate(context.Background(), uuid.New(), "SPRING", other, "2026-01-05")
	assert.Equal(t, apperrors.ErrInvalidInput, apperrors.CodeOf(err))
}

func TestValidateEmptyAllowListCoversEverything(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := newService(repo)

	repo.promos["ALL"] = &model.Promotion{Base: model.Base{ID: uuid.New()}, Code: "ALL"}

	_, err := svc.Validate(context.Background(), uuid.New(), "ALL", uuid.New(), "2026-01-05")
	assert.NoError(t, err)
}

func TestRecordUse(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := newService(repo)

	id := uuid.New()
	require.NoError(t, svc.RecordUse(context.Background(), id))
	require.NoError(t, svc.RecordUse(context.Background(), id))
	assert.Equal(t, 2, repo.increments[id])
}

func TestCreatePromotionDefaults(t *testing.T) {
	repo := newFakePromotionRepo()
	svc := newService(repo)

	promo, err := svc.CreatePromotion(context.Background(), uuid.New(), &model.CreatePromotionRequest{
		Code:          "welcome10",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ValidFrom:     "2026-01-01",
		ValidTo:       "2026-02-01",
	})
	require.NoError(t, err)
	assert.True(t, promo.Active)
	assert.Equal(t, model.DiscountPercentage, promo.DiscountType)
}
