package helper

import (
	"testing"

	"cinema_booking/constants"
	"cinema_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLetter(t *testing.T) {
	assert.Equal(t, "A", RowLetter(0))
	assert.Equal(t, "B", RowLetter(1))
	assert.Equal(t, "Z", RowLetter(25))
	assert.Equal(t, "AA", RowLetter(26))
	assert.Equal(t, "AB", RowLetter(27))
	assert.Equal(t, "AZ", RowLetter(51))
	assert.Equal(t, "BA", RowLetter(52))
}

func TestGenerateSeats(t *testing.T) {
	seats := GenerateSeats(3, 4)
	require.Len(t, seats, 12)

	assert.Equal(t, "A1", seats[0].SeatNumber)
	assert.Equal(t, 1, seats[0].Row)
	assert.Equal(t, 1, seats[0].Column)

	assert.Equal(t, "A4", seats[3].SeatNumber)
	assert.Equal(t, "B1", seats[4].SeatNumber)
	assert.Equal(t, "C4", seats[11].SeatNumber)
	assert.Equal(t, 3, seats[11].Row)
	assert.Equal(t, 4, seats[11].Column)

	for _, s := range seats {
		assert.Equal(t, constants.SEAT_NORMAL, s.Type)
		assert.Nil(t, s.BookingId)
	}
}

func TestNormalizeSeatType(t *testing.T) {
	assert.Equal(t, constants.SEAT_NORMAL, NormalizeSeatType(""))
	assert.Equal(t, constants.SEAT_NORMAL, NormalizeSeatType("  "))
	assert.Equal(t, constants.SEAT_VIP, NormalizeSeatType(constants.SEAT_VIP))
	assert.Equal(t, constants.SEAT_DISABLED, NormalizeSeatType(constants.SEAT_DISABLED))
}

func TestApplySeatPatches(t *testing.T) {
	bookingId := uint(42)
	seats := GenerateSeats(2, 2)
	seats[1].ID = 7
	seats[1].BookingId = &bookingId

	changed := ApplySeatPatches(seats, []model.SeatPatch{
		{SeatNumber: "A2", Type: constants.SEAT_VIP},
		{SeatNumber: "B1", Type: constants.SEAT_DISABLED},
		// Z9 is not in the room; B2's blank type means Normal, already Normal
		{SeatNumber: "Z9", Type: constants.SEAT_VIP},
		{SeatNumber: "B2"},
	})

	assert.Equal(t, 2, changed)
	assert.Equal(t, constants.SEAT_VIP, seats[1].Type)
	assert.Equal(t, constants.SEAT_DISABLED, seats[2].Type)
	assert.Equal(t, constants.SEAT_NORMAL, seats[0].Type)

	// retype must not touch identity or occupancy
	assert.Equal(t, uint(7), seats[1].ID)
	require.NotNil(t, seats[1].BookingId)
	assert.Equal(t, uint(42), *seats[1].BookingId)
}
