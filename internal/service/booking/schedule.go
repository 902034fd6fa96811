package booking

import (
	"time"

	"github.com/salonbase/booking-api/internal/model"
)

// window is a half-open [open, close) opening range in minutes-of-day.
type window struct {
	open  int
	close int
}

// resolveWindow maps a calendar date to that weekday's opening window.
// Returns ok=false when the day is closed, the schedule is unparsable, or
// open >= close (a zero or negative window must never be produced).
func resolveWindow(hours model.WorkingHours, date time.Time) (window, bool) {
	day := hours.For(date.Weekday())
	if day.Closed {
		return window{}, false
	}

	open, err := parseClock(day.Open)
	if err != nil {
		return window{}, false
	}
	close, err := parseClock(day.Close)
	if err != nil {
		return window{}, false
	}
	if open >= close {
		return window{}, false
	}
	return window{open: open, close: close}, true
}
