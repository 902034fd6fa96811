package model

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "Booked"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusNoShow    BookingStatus = "No-Show"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusBooked, BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Booked is the only non-terminal state; nothing ever returns to it.
func CanTransition(from, to BookingStatus) bool {
	if from != BookingStatusBooked {
		return false
	}
	switch to {
	case BookingStatusCancelled, BookingStatusCompleted, BookingStatusNoShow:
		return true
	}
	return false
}

// Booking is the central entity. Date is "YYYY-MM-DD", Time and EndTime are
// "HH:mm" wall-clock values. EndTime = Time + service duration; the buffer is
// deliberately not folded into EndTime: it is a gap requirement against
// other bookings, enforced at conflict-check time.
type Booking struct {
	Base
	BusinessID  uuid.UUID     `db:"business_id" json:"business_id"`
	ServiceID   uuid.UUID     `db:"service_id" json:"service_id"`
	CustomerID  uuid.UUID     `db:"customer_id" json:"customer_id"`
	StaffID     *uuid.UUID    `db:"staff_id" json:"staff_id,omitempty"`
	Date        string        `db:"date" json:"date"`
	Time        string        `db:"time" json:"time"`
	EndTime     string        `db:"end_time" json:"end_time"`
	Status      BookingStatus `db:"status" json:"status"`
	Notes       *string       `db:"notes" json:"notes,omitempty"`
	PromotionID *uuid.UUID    `db:"promotion_id" json:"promotion_id,omitempty"`

	// Joined display fields, populated by list queries only.
	ServiceName   *string  `db:"service_name" json:"service_name,omitempty"`
	ServicePrice  *float64 `db:"service_price" json:"service_price,omitempty"`
	CustomerName  *string  `db:"customer_name" json:"customer_name,omitempty"`
	CustomerPhone *string  `db:"customer_phone" json:"customer_phone,omitempty"`
	StaffName     *string  `db:"staff_name" json:"staff_name,omitempty"`
}

// Slot is one candidate start time in the public availability view.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// CreateBookingRequest is the public booking-creation payload.
type CreateBookingRequest struct {
	BusinessSlug  string  `json:"business_slug" binding:"required"`
	ServiceID     string  `json:"service_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required,dateonly"`
	Time          string  `json:"time" binding:"required,clock"`
	CustomerName  string  `json:"customer_name" binding:"required,min=2"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	StaffID       *string `json:"staff_id" binding:"omitempty,uuid"`
	Notes         *string `json:"notes"`
	PromotionCode *string `json:"promotion_code"`
}

// UpdateBookingStatusRequest changes a booking's lifecycle state.
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}

// BookingFilters narrows business booking lists.
type BookingFilters struct {
	Date   string
	Status BookingStatus
}
