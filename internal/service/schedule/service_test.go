package schedule

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

type fakeBlockedDateRepo struct {
	rows []*model.BlockedDate
}

func (f *fakeBlockedDateRepo) ListForDate(_ context.Context, _ uuid.UUID, date string) ([]*model.BlockedDate, error) {
	var out []*model.BlockedDate
	for _, row := range f.rows {
		if row.Date == date {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeBlockedDateRepo) List(_ context.Context, _ uuid.UUID, _, _ string) ([]*model.BlockedDate, error) {
	return f.rows, nil
}

func (f *fakeBlockedDateRepo) Create(_ context.Context, row *model.BlockedDate) error {
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeBlockedDateRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

type fakeStaffRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeStaffRepo) Get(_ context.Context, _, staffID uuid.UUID) (*model.Staff, error) {
	if !f.known[staffID] {
		return nil, apperrors.NotFound("staff", nil)
	}
	return &model.Staff{Base: model.Base{ID: staffID}}, nil
}

func (f *fakeStaffRepo) CanPerform(_ context.Context, _, _ uuid.UUID) (bool, error) {
	return true, nil
}

func newFixture(known ...uuid.UUID) (*Service, *fakeBlockedDateRepo) {
	repo := &fakeBlockedDateRepo{}
	staff := &fakeStaffRepo{known: make(map[uuid.UUID]bool)}
	for _, id := range known {
		staff.known[id] = true
	}
	return NewService(repo, staff, &logger.Logger{ZL: zerolog.Nop()}), repo
}

func strPtr(s string) *string { return &s }

func TestCreateBlockedDateFullDay(t *testing.T) {
	svc, repo := newFixture()

	blocked, err := svc.CreateBlockedDate(context.Background(), uuid.New(), &model.CreateBlockedDateRequest{
		Date: "2026-01-05",
	})
	require.NoError(t, err)
	assert.True(t, blocked.IsFullDay())
	assert.Len(t, repo.rows, 1)
}

func TestCreateBlockedDatePartialRange(t *testing.T) {
	svc, _ := newFixture()

	blocked, err := svc.CreateBlockedDate(context.Background(), uuid.New(), &model.CreateBlockedDateRequest{
		Date:      "2026-01-05",
		StartTime: strPtr("12:00"),
		EndTime:   strPtr("13:00"),
	})
	require.NoError(t, err)
	assert.False(t, blocked.IsFullDay())
}

func TestCreateBlockedDateValidation(t *testing.T) {
	svc, repo := newFixture()

	cases := []*model.CreateBlockedDateRequest{
		{Date: "bad-date"},
		{Date: "2026-01-05", StartTime: strPtr("12:00")},
		{Date: "2026-01-05", EndTime: strPtr("13:00")},
		{Date: "2026-01-05", StartTime: strPtr("noon"), EndTime: strPtr("13:00")},
		{Date: "2026-01-05", StartTime: strPtr("14:00"), EndTime: strPtr("13:00")},
		{Date: "2026-01-05", StartTime: strPtr("13:00"), EndTime: strPtr("13:00")},
	}
	for i, req := range cases {
		_, err := svc.CreateBlockedDate(context.Background(), uuid.New(), req)
		assert.Equal(t, apperrors.ErrInvalidInput, apperrors.CodeOf(err), "case %d", i)
	}
	assert.Empty(t, repo.rows)
}

func TestCreateBlockedDateUnknownStaff(t *testing.T) {
	svc, _ := newFixture()

	unknown := uuid.New().String()
	_, err := svc.CreateBlockedDate(context.Background(), uuid.New(), &model.CreateBlockedDateRequest{
		Date:    "2026-01-05",
		StaffID: &unknown,
	})
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestCreateBlockedDateForStaff(t *testing.T) {
	staffID := uuid.New()
	svc, repo := newFixture(staffID)

	id := staffID.String()
	blocked, err := svc.CreateBlockedDate(context.Background(), uuid.New(), &model.CreateBlockedDateRequest{
		Date:    "2026-01-05",
		StaffID: &id,
	})
	require.NoError(t, err)
	require.NotNil(t, blocked.StaffID)
	assert.Equal(t, staffID, *blocked.StaffID)
	assert.Len(t, repo.rows, 1)
}

func TestListBlockedDatesValidatesRange(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.ListBlockedDates(context.Background(), uuid.New(), "bad", "")
	assert.Equal(t, apperrors.ErrInvalidInput, apperrors.CodeOf(err))

	_, err = svc.ListBlockedDates(context.Background(), uuid.New(), "2026-01-01", "2026-02-01")
	assert.NoError(t, err)
}
