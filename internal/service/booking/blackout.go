package booking

import (
	"github.com/google/uuid"

	"github.com/salonbase/booking-api/internal/model"
)

// resolveBlackouts filters the day's blocked-date rows down to the requested
// staff scope. A matching row without a time range blocks the whole day and
// overrides everything else. Partial ranges are returned unmerged; the
// overlap test treats them as an unordered set. Rows that fail to parse are
// skipped rather than silently blocking the day.
func resolveBlackouts(rows []*model.BlockedDate, staffID *uuid.UUID) (fullDay bool, ranges []interval) {
	for _, row := range rows {
		if !row.AppliesToStaff(staffID) {
			continue
		}
		if row.IsFullDay() {
			return true, nil
		}
		start, err := parseClock(*row.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(*row.EndTime)
		if err != nil || start >= end {
			continue
		}
		ranges = append(ranges, interval{start: start, end: end})
	}
	return false, ranges
}
