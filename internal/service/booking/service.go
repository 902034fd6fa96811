package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/salonbase/booking-api/internal/model"
	"github.com/salonbase/booking-api/internal/repository"
	apperrors "github.com/salonbase/booking-api/pkg/errors"
	"github.com/salonbase/booking-api/pkg/logger"
	"github.com/salonbase/booking-api/pkg/metrics"
)

// PromotionResolver validates promotion codes and records redemptions.
// Usage recording is best-effort; a failed increment never fails a booking.
type PromotionResolver interface {
	Validate(ctx context.Context, businessID uuid.UUID, code string, serviceID uuid.UUID, date string) (*model.Promotion, error)
	RecordUse(ctx context.Context, id uuid.UUID) error
}

// SlotQuery describes one availability lookup. ServiceID is preferred: it
// resolves duration and buffer from the authoritative service row. A bare
// DurationMinutes query uses the business-level buffer only.
type SlotQuery struct {
	Date            string
	DurationMinutes int
	ServiceID       *uuid.UUID
	StaffID         *uuid.UUID
}

type Service struct {
	businesses   repository.BusinessRepository
	services     repository.ServiceRepository
	staff        repository.StaffRepository
	bookings     repository.BookingRepository
	blockedDates repository.BlockedDateRepository
	promotions   PromotionResolver
	slugCache    *cache.Cache
	logger       *logger.Logger
	metrics      *metrics.Metrics
}

func NewService(
	businesses repository.BusinessRepository,
	services repository.ServiceRepository,
	staff repository.StaffRepository,
	bookings repository.BookingRepository,
	blockedDates repository.BlockedDateRepository,
	promotions PromotionResolver,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *Service {
	return &Service{
		businesses:   businesses,
		services:     services,
		staff:        staff,
		bookings:     bookings,
		blockedDates: blockedDates,
		promotions:   promotions,
		slugCache:    cache.New(time.Minute, 5*time.Minute),
		logger:       logger,
		metrics:      metrics,
	}
}

// GetAvailableSlots builds the public availability view for one business,
// date and staff scope: the opening window at a 30-minute cadence, each
// candidate flagged against existing bookings and blackout ranges. Read-only;
// the committer never trusts this output.
func (s *Service) GetAvailableSlots(ctx context.Context, businessID uuid.UUID, q SlotQuery) ([]model.Slot, error) {
	start := time.Now()
	defer func() {
		s.metrics.SlotQueryDuration.Observe(time.Since(start).Seconds())
		s.metrics.SlotQueries.Inc()
	}()

	date, err := parseDate(q.Date)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid date, expected YYYY-MM-DD", err)
	}

	business, err := s.businesses.Get(ctx, businessID)
	if err != nil {
		return nil, err
	}

	duration := q.DurationMinutes
	serviceBuffer := 0
	if q.ServiceID != nil {
		svc, err := s.services.Get(ctx, businessID, *q.ServiceID)
		if err != nil {
			return nil, err
		}
		if !svc.Active {
			return nil, apperrors.NotFound("service", nil)
		}
		duration = svc.DurationMinutes
		serviceBuffer = svc.BufferMinutes
	}
	if duration < 1 || duration > model.MaxServiceDuration {
		return nil, apperrors.InvalidInput(fmt.Sprintf("duration must be between 1 and %d minutes", model.MaxServiceDuration), nil)
	}

	hours := business.WorkingHours
	if q.StaffID != nil {
		staff, err := s.staff.Get(ctx, businessID, *q.StaffID)
		if err != nil {
			return nil, err
		}
		if !staff.Active {
			return nil, apperrors.NotFound("staff", nil)
		}
		if staff.WorkingHours != nil {
			hours = *staff.WorkingHours
		}
	}

	window, open := resolveWindow(hours, date)
	if !open {
		return []model.Slot{}, nil
	}

	blockedRows, err := s.blockedDates.ListForDate(ctx, businessID, q.Date)
	if err != nil {
		return nil, err
	}
	fullDay, blackouts := resolveBlackouts(blockedRows, q.StaffID)
	if fullDay {
		return []model.Slot{}, nil
	}

	existing, err := s.bookings.ListForDay(ctx, businessID, q.Date, q.StaffID)
	if err != nil {
		return nil, err
	}
	booked := make([]interval, 0, len(existing))
	for _, b := range existing {
		bStart, err := parseClock(b.Time)
		if err != nil {
			continue
		}
		bEnd, err := parseClock(b.EndTime)
		if err != nil {
			continue
		}
		booked = append(booked, interval{start: bStart, end: bEnd})
	}

	buffer := effectiveBuffer(serviceBuffer, business.BufferMinutes)
	return generateSlots(window, duration, buffer, booked, blackouts), nil
}

// CreateBooking validates the request, resolves the business and promotion,
// and hands off to the repository's serialized commit. The promotion usage
// counter is bumped after the commit, outside the transaction.
func (s *Service) CreateBooking(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if _, err := parseDate(req.Date); err != nil {
		return nil, apperrors.InvalidInput("invalid date, expected YYYY-MM-DD", err)
	}
	if _, err := parseClock(req.Time); err != nil {
		return nil, apperrors.InvalidInput("invalid time, expected HH:mm", err)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid service id", err)
	}
	var staffID *uuid.UUID
	if req.StaffID != nil && *req.StaffID != "" {
		id, err := uuid.Parse(*req.StaffID)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid staff id", err)
		}
		staffID = &id
	}

	business, err := s.businessBySlug(ctx, req.BusinessSlug)
	if err != nil {
		return nil, err
	}

	// Advisory eligibility check; the committer re-verifies inside the
	// transaction.
	if staffID != nil {
		eligible, err := s.staff.CanPerform(ctx, *staffID, serviceID)
		if err != nil {
			return nil, err
		}
		if !eligible {
			return nil, apperrors.InvalidAssignment("staff member cannot perform this service", nil)
		}
	}

	var promotionID *uuid.UUID
	if req.PromotionCode != nil && *req.PromotionCode != "" {
		promo, err := s.promotions.Validate(ctx, business.ID, *req.PromotionCode, serviceID, req.Date)
		if err != nil {
			return nil, err
		}
		promotionID = &promo.ID
	}

	booking, err := s.bookings.Create(ctx, &repository.CreateBookingParams{
		BusinessID:    business.ID,
		ServiceID:     serviceID,
		StaffID:       staffID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		PromotionID:   promotionID,
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			s.metrics.BookingConflicts.Inc()
		}
		return nil, err
	}
	s.metrics.BookingsCreated.Inc()

	if promotionID != nil {
		if err := s.promotions.RecordUse(ctx, *promotionID); err != nil {
			s.logger.ZL.Warn().Err(err).
				Str("promotion_id", promotionID.String()).
				Str("booking_id", booking.ID.String()).
				Msg("failed to record promotion usage")
		}
	}

	s.logger.ZL.Info().
		Str("booking_id", booking.ID.String()).
		Str("business_id", business.ID.String()).
		Str("date", booking.Date).
		Str("time", booking.Time).
		Msg("booking created")

	return booking, nil
}

// businessBySlug resolves the public slug with a short-lived cache. Only the
// slug-to-business mapping is cached, never availability.
func (s *Service) businessBySlug(ctx context.Context, slug string) (*model.Business, error) {
	if cached, ok := s.slugCache.Get(slug); ok {
		return cached.(*model.Business), nil
	}
	business, err := s.businesses.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.slugCache.SetDefault(slug, business)
	return business, nil
}

// GetBusinessBySlug resolves the public booking-page identity of a business.
func (s *Service) GetBusinessBySlug(ctx context.Context, slug string) (*model.Business, error) {
	return s.businessBySlug(ctx, slug)
}

// ListServices returns the bookable catalog of a business.
func (s *Service) ListServices(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error) {
	if _, err := s.businesses.Get(ctx, businessID); err != nil {
		return nil, err
	}
	return s.services.List(ctx, businessID)
}

func (s *Service) GetBooking(ctx context.Context, businessID, id uuid.UUID) (*model.Booking, error) {
	return s.bookings.Get(ctx, businessID, id)
}

func (s *Service) ListBookings(ctx context.Context, businessID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error) {
	if filters != nil && filters.Date != "" {
		if _, err := parseDate(filters.Date); err != nil {
			return nil, apperrors.InvalidInput("invalid date, expected YYYY-MM-DD", err)
		}
	}
	if filters != nil && filters.Status != "" && !model.ValidStatus(filters.Status) {
		return nil, apperrors.InvalidInput("unknown booking status", nil)
	}
	return s.bookings.List(ctx, businessID, filters)
}

// UpdateBookingStatus applies the one-step lifecycle: Booked is the only
// state a booking may leave, and it never returns.
func (s *Service) UpdateBookingStatus(ctx context.Context, businessID, id uuid.UUID, status model.BookingStatus) (*model.Booking, error) {
	if !model.ValidStatus(status) {
		return nil, apperrors.InvalidInput("unknown booking status", nil)
	}
	if !model.CanTransition(model.BookingStatusBooked, status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cannot transition a booking to %s", status), nil)
	}
	return s.bookings.UpdateStatus(ctx, businessID, id, status)
}
