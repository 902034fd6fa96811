package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbase/booking-api/internal/model"
)

func weekdayHours(open, close string) model.WorkingHours {
	day := model.DaySchedule{Open: open, Close: close}
	return model.WorkingHours{
		Monday:    day,
		Tuesday:   day,
		Wednesday: day,
		Thursday:  day,
		Friday:    day,
		Saturday:  day,
		Sunday:    model.DaySchedule{Closed: true},
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestResolveWindowOpenDay(t *testing.T) {
	// 2026-01-05 is a Monday.
	w, ok := resolveWindow(weekdayHours("09:00", "17:30"), mustDate(t, "2026-01-05"))
	require.True(t, ok)
	assert.Equal(t, 9*60, w.open)
	assert.Equal(t, 17*60+30, w.close)
}

func TestResolveWindowClosedDay(t *testing.T) {
	// 2026-01-04 is a Sunday.
	_, ok := resolveWindow(weekdayHours("09:00", "17:00"), mustDate(t, "2026-01-04"))
	assert.False(t, ok)
}

func TestResolveWindowRejectsInvertedHours(t *testing.T) {
	_, ok := resolveWindow(weekdayHours("17:00", "09:00"), mustDate(t, "2026-01-05"))
	assert.False(t, ok)

	_, ok = resolveWindow(weekdayHours("09:00", "09:00"), mustDate(t, "2026-01-05"))
	assert.False(t, ok)
}

func TestResolveWindowRejectsUnparsableHours(t *testing.T) {
	_, ok := resolveWindow(weekdayHours("not-a-time", "17:00"), mustDate(t, "2026-01-05"))
	assert.False(t, ok)

	_, ok = resolveWindow(weekdayHours("09:00", "25:00"), mustDate(t, "2026-01-05"))
	assert.False(t, ok)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseClock(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseClock(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 570, 615, 1439} {
		parsed, err := parseClock(formatClock(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
}
