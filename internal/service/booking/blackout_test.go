package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbase/booking-api/internal/model"
)

func strPtr(s string) *string { return &s }

func TestResolveBlackoutsFullDay(t *testing.T) {
	rows := []*model.BlockedDate{
		{Date: "2026-01-05"},
	}
	fullDay, ranges := resolveBlackouts(rows, nil)
	assert.True(t, fullDay)
	assert.Nil(t, ranges)
}

func TestResolveBlackoutsPartialRanges(t *testing.T) {
	rows := []*model.BlockedDate{
		{Date: "2026-01-05", StartTime: strPtr("12:00"), EndTime: strPtr("13:00")},
		{Date: "2026-01-05", StartTime: strPtr("15:30"), EndTime: strPtr("16:00")},
	}
	fullDay, ranges := resolveBlackouts(rows, nil)
	assert.False(t, fullDay)
	require.Len(t, ranges, 2)
	assert.Equal(t, interval{start: 12 * 60, end: 13 * 60}, ranges[0])
	assert.Equal(t, interval{start: 15*60 + 30, end: 16 * 60}, ranges[1])
}

func TestResolveBlackoutsStaffScope(t *testing.T) {
	staffA := uuid.New()
	staffB := uuid.New()
	rows := []*model.BlockedDate{
		// Business-wide closure applies to everyone.
		{Date: "2026-01-05", StartTime: strPtr("09:00"), EndTime: strPtr("10:00")},
		// Staff A's leave only affects staff A.
		{Date: "2026-01-05", StaffID: &staffA, StartTime: strPtr("14:00"), EndTime: strPtr("17:00")},
	}

	_, forB := resolveBlackouts(rows, &staffB)
	require.Len(t, forB, 1)
	assert.Equal(t, interval{start: 9 * 60, end: 10 * 60}, forB[0])

	_, forA := resolveBlackouts(rows, &staffA)
	assert.Len(t, forA, 2)

	_, unassigned := resolveBlackouts(rows, nil)
	assert.Len(t, unassigned, 1)
}

func TestResolveBlackoutsStaffFullDayLeave(t *testing.T) {
	staffA := uuid.New()
	rows := []*model.BlockedDate{
		{Date: "2026-01-05", StaffID: &staffA},
	}

	fullDay, _ := resolveBlackouts(rows, &staffA)
	assert.True(t, fullDay)

	fullDay, ranges := resolveBlackouts(rows, nil)
	assert.False(t, fullDay)
	assert.Empty(t, ranges)
}

func TestResolveBlackoutsSkipsMalformedRows(t *testing.T) {
	rows := []*model.BlockedDate{
		{Date: "2026-01-05", StartTime: strPtr("bad"), EndTime: strPtr("13:00")},
		{Date: "2026-01-05", StartTime: strPtr("14:00"), EndTime: strPtr("12:00")},
		{Date: "2026-01-05", StartTime: strPtr("15:00"), EndTime: strPtr("15:30")},
	}
	fullDay, ranges := resolveBlackouts(rows, nil)
	assert.False(t, fullDay)
	require.Len(t, ranges, 1)
	assert.Equal(t, interval{start: 15 * 60, end: 15*60 + 30}, ranges[0])
}
