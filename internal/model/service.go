package model

import "github.com/google/uuid"

// MaxServiceDuration caps a single booking at a working day.
const MaxServiceDuration = 480

// Service is a bookable catalog entry owned by exactly one business.
// BufferMinutes overrides the business default when the larger of the two;
// the effective buffer is always max(service, business).
type Service struct {
	Base
	BusinessID      uuid.UUID `db:"business_id" json:"business_id"`
	Name            string    `db:"name" json:"name"`
	Price           float64   `db:"price" json:"price"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	BufferMinutes   int       `db:"buffer_minutes" json:"buffer_minutes"`
	Active          bool      `db:"active" json:"active"`
}
