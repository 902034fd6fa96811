package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbase/booking-api/internal/model"
)

func slotTimes(slots []model.Slot, available bool) []string {
	var times []string
	for _, s := range slots {
		if s.Available == available {
			times = append(times, s.Time)
		}
	}
	return times
}

func TestGenerateSlotsEmptyDay(t *testing.T) {
	// 09:00-17:00, 60-minute service, nothing booked. The last candidate is
	// 16:00: a 16:30 start would run past closing.
	w := window{open: 9 * 60, close: 17 * 60}
	slots := generateSlots(w, 60, 0, nil, nil)

	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "16:00", slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free on an empty day", s.Time)
	}
}

func TestGenerateSlotsServiceMustFitBeforeClose(t *testing.T) {
	// 09:00-12:00 with a 90-minute service: 10:30 fits exactly, 11:00 does not.
	w := window{open: 9 * 60, close: 12 * 60}
	slots := generateSlots(w, 90, 0, nil, nil)

	require.Len(t, slots, 4)
	assert.Equal(t, "10:30", slots[len(slots)-1].Time)
}

func TestGenerateSlotsExistingBookingBlocks(t *testing.T) {
	// A 10:00-11:00 booking kills the 09:30, 10:00 and 10:30 starts for a
	// 60-minute service; 09:00 and 11:00 touch it and stay legal.
	w := window{open: 9 * 60, close: 17 * 60}
	booked := []interval{{start: 10 * 60, end: 11 * 60}}
	slots := generateSlots(w, 60, 0, booked, nil)

	unavailable := slotTimes(slots, false)
	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, unavailable)
}

func TestGenerateSlotsBufferExtendsBothSides(t *testing.T) {
	// 30-minute service with a 15-minute buffer against an existing
	// 10:00-10:30 booking. The buffer guards the gap on both sides: 09:30
	// would land its buffered tail inside the booking, 10:30 starts inside
	// the booking's buffered tail. 10:45 would be the first legal start but
	// the cadence only offers 11:00.
	w := window{open: 9 * 60, close: 17 * 60}
	booked := []interval{{start: 10 * 60, end: 10*60 + 30}}
	slots := generateSlots(w, 30, 15, booked, nil)

	byTime := make(map[string]bool)
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.True(t, byTime["09:00"])
	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
}

func TestGenerateSlotsTrailingBufferMayPassClose(t *testing.T) {
	// The service itself must fit before close; its buffer may spill past.
	w := window{open: 16 * 60, close: 17 * 60}
	slots := generateSlots(w, 60, 30, nil, nil)

	require.Len(t, slots, 1)
	assert.Equal(t, "16:00", slots[0].Time)
	assert.True(t, slots[0].Available)
}

func TestGenerateSlotsBlackoutIgnoresBuffer(t *testing.T) {
	// Blackouts block the service interval only; the buffer does not extend
	// the candidate against a blackout. A 12:00-13:00 blackout with a
	// 30-minute buffer still allows 11:30 (service ends 12:00, touching).
	w := window{open: 9 * 60, close: 17 * 60}
	blackouts := []interval{{start: 12 * 60, end: 13 * 60}}
	slots := generateSlots(w, 30, 30, nil, blackouts)

	byTime := make(map[string]bool)
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.True(t, byTime["11:30"])
	assert.False(t, byTime["12:00"])
	assert.False(t, byTime["12:30"])
	assert.True(t, byTime["13:00"])
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	w := window{open: 9 * 60, close: 17 * 60}
	booked := []interval{{start: 10 * 60, end: 11 * 60}, {start: 14 * 60, end: 15 * 60}}
	blackouts := []interval{{start: 12 * 60, end: 12*60 + 30}}

	first := generateSlots(w, 45, 10, booked, blackouts)
	second := generateSlots(w, 45, 10, booked, blackouts)
	assert.Equal(t, first, second)
}

func TestIntervalsOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aEnd           int
		bStart, bEnd           int
		want                   bool
	}{
		{"disjoint", 540, 600, 660, 720, false},
		{"touching end to start", 540, 600, 600, 660, false},
		{"touching start to end", 600, 660, 540, 600, false},
		{"partial overlap", 540, 630, 600, 660, true},
		{"contained", 540, 720, 600, 660, true},
		{"identical", 600, 660, 600, 660, true},
		{"one minute overlap", 540, 601, 600, 660, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intervalsOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, intervalsOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestEffectiveBuffer(t *testing.T) {
	assert.Equal(t, 15, effectiveBuffer(15, 10))
	assert.Equal(t, 20, effectiveBuffer(5, 20))
	assert.Equal(t, 0, effectiveBuffer(0, 0))
}
