package reservation_workflow

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationClient/internal/domain"
)

var today = time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		isCheckOut bool
		want       domain.Timestamp
	}{
		{name: "check-out without date", isCheckOut: true, want: "2025-10-15T15:00:00Z"},
		{name: "check-in without date", want: "2025-10-15T00:00:00Z"},
		{name: "check-out date only", date: "2025-10-20", isCheckOut: true, want: "2025-10-20T15:00:00Z"},
		{name: "check-in date only", date: "2025-10-18", want: "2025-10-18T00:00:00Z"},
		{name: "check-out explicit time kept", date: "2025-10-20T11:15", isCheckOut: true, want: "2025-10-20T11:15:00Z"},
		{name: "check-in explicit seconds kept", date: "2025-10-18T14:05:09", want: "2025-10-18T14:05:09Z"},
		{name: "space separated", date: "2025-10-18 08:00", want: "2025-10-18T08:00:00Z"},
		{name: "explicit midnight check-out", date: "2025-10-20T00:00:00", isCheckOut: true, want: "2025-10-20T00:00:00Z"},
		{name: "offset converted to utc", date: "2025-10-18T10:00:00+02:00", want: "2025-10-18T08:00:00Z"},
		{name: "surrounding spaces", date: "  2025-10-18 ", want: "2025-10-18T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.date, tt.isCheckOut, today, domain.DefaultCheckOutTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsNormalized())
		})
	}
}

func TestNormalize_CheckInNeverGetsCheckOutTime(t *testing.T) {
	inputs := []string{"", "2025-10-18", "2025-10-18T00:00", "2025-12-31", "2026-01-01T00:00:00Z"}

	for _, in := range inputs {
		got, err := Normalize(in, false, today, domain.DefaultCheckOutTime)
		require.NoError(t, err)
		assert.False(t, strings.HasSuffix(got.String(), "15:00:00Z"), "input %q produced %s", in, got)
	}
}

func TestNormalize_CustomCheckOutTime(t *testing.T) {
	got, err := Normalize("", true, today, "12:00:00")
	require.NoError(t, err)
	assert.Equal(t, domain.Timestamp("2025-10-15T12:00:00Z"), got)
}

func TestNormalize_InvalidDate(t *testing.T) {
	for _, in := range []string{"tomorrow", "2025-13-01", "15/10/2025"} {
		_, err := Normalize(in, true, today, domain.DefaultCheckOutTime)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestNormalize_TodayTakenInUTC(t *testing.T) {
	// 23:30 в UTC-5 это уже 16 октября по UTC
	lateEvening := time.Date(2025, 10, 15, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))

	checkOut, err := Normalize("", true, lateEvening, domain.DefaultCheckOutTime)
	require.NoError(t, err)
	assert.Equal(t, domain.Timestamp("2025-10-16T15:00:00Z"), checkOut)

	checkIn, err := Normalize("", false, lateEvening, domain.DefaultCheckOutTime)
	require.NoError(t, err)
	assert.Equal(t, domain.Timestamp("2025-10-16T00:00:00Z"), checkIn)
}
