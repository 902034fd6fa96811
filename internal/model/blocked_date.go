package model

import "github.com/google/uuid"

// BlockedDate marks a day (or a sub-range of it) as unavailable: holidays,
// leave, maintenance. StaffID nil means the block applies to everyone.
// StartTime/EndTime nil means the entire day is blocked.
type BlockedDate struct {
	Base
	BusinessID uuid.UUID  `db:"business_id" json:"business_id"`
	StaffID    *uuid.UUID `db:"staff_id" json:"staff_id,omitempty"`
	Date       string     `db:"date" json:"date"`
	StartTime  *string    `db:"start_time" json:"start_time,omitempty"`
	EndTime    *string    `db:"end_time" json:"end_time,omitempty"`
	Reason     *string    `db:"reason" json:"reason,omitempty"`
	StaffName  *string    `db:"staff_name" json:"staff_name,omitempty"`
}

// IsFullDay reports whether the row blocks the whole day.
func (b *BlockedDate) IsFullDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// AppliesToStaff reports whether the row is in scope for a query against the
// given staff member (nil = unassigned). Business-wide rows always apply;
// staff rows only to that staff member.
func (b *BlockedDate) AppliesToStaff(staffID *uuid.UUID) bool {
	if b.StaffID == nil {
		return true
	}
	return staffID != nil && *b.StaffID == *staffID
}

type CreateBlockedDateRequest struct {
	StaffID   *string `json:"staff_id" binding:"omitempty,uuid"`
	Date      string  `json:"date" binding:"required,dateonly"`
	StartTime *string `json:"start_time" binding:"omitempty,clock"`
	EndTime   *string `json:"end_time" binding:"omitempty,clock"`
	Reason    *string `json:"reason"`
}
