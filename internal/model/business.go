package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DaySchedule is one weekday's opening window. Open/Close are wall-clock
// "HH:mm" strings; Closed wins over whatever Open/Close hold.
type DaySchedule struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// WorkingHours maps every weekday to a schedule. Kept as an explicit struct
// rather than a map so a missing day is impossible to represent.
type WorkingHours struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// For returns the schedule for the given weekday.
func (wh WorkingHours) For(day time.Weekday) DaySchedule {
	switch day {
	case time.Monday:
		return wh.Monday
	case time.Tuesday:
		return wh.Tuesday
	case time.Wednesday:
		return wh.Wednesday
	case time.Thursday:
		return wh.Thursday
	case time.Friday:
		return wh.Friday
	case time.Saturday:
		return wh.Saturday
	default:
		return wh.Sunday
	}
}

// Value implements driver.Valuer, storing working hours as JSONB.
func (wh WorkingHours) Value() (driver.Value, error) {
	return json.Marshal(wh)
}

// Scan implements sql.Scanner.
func (wh *WorkingHours) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, wh)
	case string:
		return json.Unmarshal([]byte(v), wh)
	case nil:
		*wh = WorkingHours{}
		return nil
	default:
		return fmt.Errorf("unsupported working_hours type %T", src)
	}
}

// Business is a tenant: a salon or barbershop with its own catalog, roster
// and booking rules.
type Business struct {
	Base
	Name          string       `db:"name" json:"name"`
	Slug          string       `db:"slug" json:"slug"`
	Email         string       `db:"email" json:"email"`
	Phone         string       `db:"phone" json:"phone"`
	Location      string       `db:"location" json:"location"`
	WorkingHours  WorkingHours `db:"working_hours" json:"working_hours"`
	BufferMinutes int          `db:"buffer_minutes" json:"buffer_minutes"`
}
