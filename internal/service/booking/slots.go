package booking

import (
	"github.com/salonbase/booking-api/internal/model"
)

// interval is a half-open [start, end) range in minutes-of-day.
type interval struct {
	start int
	end   int
}

// intervalsOverlap is the single overlap test used everywhere: half-open
// semantics, so touching intervals (aEnd == bStart) do not collide and
// back-to-back bookings are legal at buffer zero.
func intervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// generateSlots emits candidate start times at a fixed 30-minute cadence
// from the window's open. A candidate is offered while start+duration fits
// before close; its trailing buffer may extend past closing. Availability
// checks the buffered interval against bookings (each booking's occupied
// range is likewise extended by the buffer gap) and the unbuffered interval
// against blackouts. Pure function of its inputs.
func generateSlots(w window, durationMinutes, bufferMinutes int, bookings, blackouts []interval) []model.Slot {
	slots := []model.Slot{}
	for start := w.open; start+durationMinutes <= w.close; start += slotIncrement {
		end := start + durationMinutes
		slots = append(slots, model.Slot{
			Time:      formatClock(start),
			Available: !conflictsBooking(start, end+bufferMinutes, bufferMinutes, bookings) && !conflictsBlackout(start, end, blackouts),
		})
	}
	return slots
}

func conflictsBooking(start, bufferedEnd, bufferMinutes int, bookings []interval) bool {
	for _, b := range bookings {
		if intervalsOverlap(start, bufferedEnd, b.start, b.end+bufferMinutes) {
			return true
		}
	}
	return false
}

func conflictsBlackout(start, end int, blackouts []interval) bool {
	for _, b := range blackouts {
		if intervalsOverlap(start, end, b.start, b.end) {
			return true
		}
	}
	return false
}

// effectiveBuffer picks the more restrictive of the service override and the
// business default.
func effectiveBuffer(serviceBuffer, businessBuffer int) int {
	if serviceBuffer > businessBuffer {
		return serviceBuffer
	}
	return businessBuffer
}
