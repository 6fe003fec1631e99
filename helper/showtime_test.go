package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShowtimeStart(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	start := ShowtimeStart(date, "19:30")
	assert.Equal(t, 19, start.Hour())
	assert.Equal(t, 30, start.Minute())
	assert.Equal(t, date.Day(), start.Day())

	// malformed clock falls back to midnight
	midnight := ShowtimeStart(date, "bogus")
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, 0, midnight.Minute())
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "09:05", FormatTime(9, 5))
	assert.Equal(t, "19:30", FormatTime(19, 30))
}
