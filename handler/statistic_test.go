package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingDateRangeEmpty(t *testing.T) {
	where, args, err := bookingDateRange("", "")
	require.NoError(t, err)
	assert.Equal(t, "1=1", where)
	assert.Empty(t, args)
}

func TestBookingDateRangeBothBounds(t *testing.T) {
	where, args, err := bookingDateRange("2026-08-01", "2026-08-07")
	require.NoError(t, err)
	assert.Equal(t, "1=1 AND booked_at >= ? AND booked_at < ?", where)
	require.Len(t, args, 2)

	start := args[0].(time.Time)
	end := args[1].(time.Time)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	// upper bound is exclusive on the day after endDate
	assert.Equal(t, time.Date(2026, 8, 8, 0, 0, 0, 0, time.UTC), end)
}

func TestBookingDateRangeStartOnly(t *testing.T) {
	where, args, err := bookingDateRange("2026-08-01", "")
	require.NoError(t, err)
	assert.Equal(t, "1=1 AND booked_at >= ?", where)
	assert.Len(t, args, 1)
}

func TestBookingDateRangeBadInput(t *testing.T) {
	_, _, err := bookingDateRange("01-08-2026", "")
	assert.Error(t, err)

	_, _, err = bookingDateRange("", "not-a-date")
	assert.Error(t, err)
}
