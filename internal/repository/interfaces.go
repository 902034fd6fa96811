package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
)

// CreateBookingParams carries the validated inputs for the transactional
// booking commit. Times are wall-clock strings; duration and buffer are
// resolved inside the transaction from the authoritative service row.
type CreateBookingParams struct {
	BusinessID    uuid.UUID
	ServiceID     uuid.UUID
	StaffID       *uuid.UUID
	Date          string
	Time          string
	CustomerName  string
	CustomerPhone string
	Notes         *string
	PromotionID   *uuid.UUID
}

// All repository interfaces in one file
type (
	BusinessRepository interface {
		Get(ctx context.Context, id uuid.UUID) (*model.Business, error)
		GetBySlug(ctx context.Context, slug string) (*model.Business, error)
	}

	ServiceRepository interface {
		// Get is scoped to a business: a service id under the wrong business
		// is a not-found, never a cross-tenant read.
		Get(ctx context.Context, businessID, serviceID uuid.UUID) (*model.Service, error)
		List(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error)
	}

	StaffRepository interface {
		Get(ctx context.Context, businessID, staffID uuid.UUID) (*model.Staff, error)
		CanPerform(ctx context.Context, staffID, serviceID uuid.UUID) (bool, error)
	}

	BlockedDateRepository interface {
		ListForDate(ctx context.Context, businessID uuid.UUID, date string) ([]*model.BlockedDate, error)
		List(ctx context.Context, businessID uuid.UUID, startDate, endDate string) ([]*model.BlockedDate, error)
		Create(ctx context.Context, blocked *model.BlockedDate) error
		Delete(ctx context.Context, businessID, id uuid.UUID) error
	}

	// BookingRepository owns all booking writes. Create runs the full
	// serialized commit protocol: lock, eligibility, overlap re-check,
	// customer upsert, insert, outbox row, one transaction.
	BookingRepository interface {
		Create(ctx context.Context, params *CreateBookingParams) (*model.Booking, error)
		Get(ctx context.Context, businessID, id uuid.UUID) (*model.Booking, error)
		List(ctx context.Context, businessID uuid.UUID, filters *model.BookingFilters) ([]*model.Booking, error)
		// ListForDay returns the non-cancelled bookings of one
		// (business, date, staff-scope) bucket, ordered by start time.
		ListForDay(ctx context.Context, businessID uuid.UUID, date string, staffID *uuid.UUID) ([]*model.Booking, error)
		UpdateStatus(ctx context.Context, businessID, id uuid.UUID, status model.BookingStatus) (*model.Booking, error)
	}

	PromotionRepository interface {
		Create(ctx context.Context, promo *model.Promotion) error
		List(ctx context.Context, businessID uuid.UUID) ([]*model.Promotion, error)
		// FindValid returns the active promotion for the code if it is inside
		// its validity window and under its usage cap on the given date.
		FindValid(ctx context.Context, businessID uuid.UUID, code, date string) (*model.Promotion, error)
		IncrementUsage(ctx context.Context, id uuid.UUID) error
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		ClaimPending(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string, retryAt *time.Time) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
