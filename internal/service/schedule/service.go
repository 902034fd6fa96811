package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/repository"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
	"github.com/salonbase/booking-api/pkg/logger"
)

// Service manages the blackout calendar: holidays, staff leave, partial-day
// closures. These rows feed the availability view, which hides the covered
// slots before a customer can pick them.
type Service struct {
	blockedDates repository.BlockedDateRepository
	staff        repository.StaffRepository
	logger       *logger.Logger
}

func NewService(blockedDates repository.BlockedDateRepository, staff repository.StaffRepository, logger *logger.Logger) *Service {
	return &Service{
		blockedDates: blockedDates,
		staff:        staff,
		logger:       logger,
	}
}

func (s *Service) ListBlockedDates(ctx context.Context, businessID uuid.UUID, startDate, endDate string) ([]*model.BlockedDate, error) {
	if startDate != "" {
		if _, err := time.Parse("2006-01-02", startDate); err != nil {
			return nil, apperrors.InvalidInput("invalid start_date, expected YYYY-MM-DD", err)
		}
	}
	if endDate != "" {
		if _, err := time.Parse("2006-01-02", endDate); err != nil {
			return nil, apperrors.InvalidInput("invalid end_date, expected YYYY-MM-DD", err)
		}
	}
	return s.blockedDates.List(ctx, businessID, startDate, endDate)
}

// CreateBlockedDate validates and stores one blackout row. A row with no time
// range blocks the entire day; a partial row must carry both bounds in order.
// A staff id must belong to the business.
func (s *Service) CreateBlockedDate(ctx context.Context, businessID uuid.UUID, req *model.CreateBlockedDateRequest) (*model.BlockedDate, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, apperrors.InvalidInput("invalid date, expected YYYY-MM-DD", err)
	}

	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, apperrors.InvalidInput("start_time and end_time must be provided together", nil)
	}
	if req.StartTime != nil {
		start, err := time.Parse("15:04", *req.StartTime)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid start_time, expected HH:mm", err)
		}
		end, err := time.Parse("15:04", *req.EndTime)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid end_time, expected HH:mm", err)
		}
		if !start.Before(end) {
			return nil, apperrors.InvalidInput("start_time must be before end_time", nil)
		}
	}

	var staffID *uuid.UUID
	if req.StaffID != nil && *req.StaffID != "" {
		id, err := uuid.Parse(*req.StaffID)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid staff id", err)
		}
		if _, err := s.staff.Get(ctx, businessID, id); err != nil {
			return nil, err
		}
		staffID = &id
	}

	blocked := &model.BlockedDate{
		BusinessID: businessID,
		StaffID:    staffID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
	}
	if err := s.blockedDates.Create(ctx, blocked); err != nil {
		return nil, err
	}

	s.logger.ZL.Info().
		Str("business_id", businessID.String()).
		Str("date", blocked.Date).
		Bool("full_day", blocked.IsFullDay()).
		Msg("blocked date created")

	return blocked, nil
}

func (s *Service) DeleteBlockedDate(ctx context.Context, businessID, id uuid.UUID) error {
	return s.blockedDates.Delete(ctx, businessID, id)
}
