package model

import "github.com/google/uuid"

// Staff is a roster member. WorkingHours is nil when the member follows the
// business schedule. Deactivation is a soft flag; existing bookings survive.
type Staff struct {
	Base
	BusinessID   uuid.UUID     `db:"business_id" json:"business_id"`
	Name         string        `db:"name" json:"name"`
	Email        *string       `db:"email" json:"email,omitempty"`
	Phone        *string       `db:"phone" json:"phone,omitempty"`
	Role         string        `db:"role" json:"role"`
	WorkingHours *WorkingHours `db:"working_hours" json:"working_hours,omitempty"`
	Active       bool          `db:"active" json:"active"`
}
