package handler

import (
	"testing"
	"time"

	"cinema_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeBookings(t *testing.T) {
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	bookings := []model.Booking{
		{
			DTO:           model.DTO{ID: 11},
			PublicCode:    "BKG-1a2b3c4d",
			ShowtimeId:    5,
			RoomId:        2,
			SeatId:        42,
			CustomerName:  "Thida",
			CustomerPhone: "0912345678",
			TotalPrice:    400,
			Showtime: model.Showtime{
				Date: date,
				Time: "19:30",
				Movie: model.Movie{
					Title:  "The Long Walk",
					Poster: "https://img.example/long-walk.jpg",
				},
			},
			Room: model.Room{Name: "Room A", SeatingCapacity: 48},
			Seat: model.Seat{SeatNumber: "C7"},
		},
	}

	rows := summarizeBookings(bookings)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, uint(11), row.ID)
	assert.Equal(t, "BKG-1a2b3c4d", row.PublicCode)
	assert.Equal(t, "C7", row.SeatNumber)

	assert.Equal(t, uint(5), row.Showtime.Id)
	assert.Equal(t, date, row.Showtime.Date)
	assert.Equal(t, "19:30", row.Showtime.Time)
	assert.Equal(t, "The Long Walk", row.Showtime.MovieTitle)
	assert.Equal(t, "https://img.example/long-walk.jpg", row.Showtime.MoviePoster)

	assert.Equal(t, uint(2), row.Room.Id)
	assert.Equal(t, "Room A", row.Room.Name)
	assert.Equal(t, 48, row.Room.SeatingCapacity)
}

func TestSummarizeBookingsEmpty(t *testing.T) {
	rows := summarizeBookings(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
