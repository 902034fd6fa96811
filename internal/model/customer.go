package model

// Customer is a guest booker identified by phone. One customer row may carry
// bookings across many businesses; the row outlives any single booking.
type Customer struct {
	Base
	Name  string  `db:"name" json:"name"`
	Phone string  `db:"phone" json:"phone"`
	Email *string `db:"email" json:"email,omitempty"`
}
