package helper

import (
	"testing"

	"cinema_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomSeats() []model.Seat {
	seats := GenerateSeats(2, 3)
	for i := range seats {
		seats[i].ID = uint(i + 1)
	}
	return seats
}

func TestResolveSelection(t *testing.T) {
	seats := roomSeats()

	resolved := ResolveSelection(seats, []model.SeatSelection{
		{Id: 1, Price: 400},
		{Id: 4, Price: 700},
		{Id: 999, Price: 400}, // unknown seat, silently dropped
	})

	require.Len(t, resolved, 2)
	assert.Equal(t, "A1", resolved[0].SeatNumber)
	assert.Equal(t, 400.0, resolved[0].Price)
	assert.Equal(t, "B1", resolved[1].SeatNumber)
	assert.Equal(t, 700.0, resolved[1].Price)
}

func TestResolveSelectionAllUnknown(t *testing.T) {
	resolved := ResolveSelection(roomSeats(), []model.SeatSelection{
		{Id: 50, Price: 400},
	})
	assert.Empty(t, resolved)
}

func TestFindConflicts(t *testing.T) {
	seats := roomSeats()
	resolved := ResolveSelection(seats, []model.SeatSelection{
		{Id: 1, Price: 400},
		{Id: 2, Price: 400},
		{Id: 3, Price: 400},
	})

	active := []model.Booking{
		{SeatId: 1},
		{SeatId: 3},
		{SeatId: 2, IsCancelled: true}, // cancelled bookings do not block
	}

	conflicts := FindConflicts(active, resolved)
	assert.Equal(t, []string{"A1", "A3"}, conflicts)
	assert.Equal(t, "Already booked: A1, A3", ConflictMessage(conflicts))
}

func TestFindConflictsNone(t *testing.T) {
	resolved := ResolveSelection(roomSeats(), []model.SeatSelection{
		{Id: 5, Price: 400},
	})
	conflicts := FindConflicts([]model.Booking{{SeatId: 1}}, resolved)
	assert.Empty(t, conflicts)
}

func TestSplitDiscount(t *testing.T) {
	assert.Equal(t, 50.0, SplitDiscount(100, 2))
	assert.Equal(t, 33.33, SplitDiscount(100, 3))
	assert.Equal(t, 0.0, SplitDiscount(0, 2))
	assert.Equal(t, 0.0, SplitDiscount(-10, 2))
	assert.Equal(t, 0.0, SplitDiscount(100, 0))
}

func TestDiscountAppliedPerSeat(t *testing.T) {
	perSeat := SplitDiscount(100, 2)
	total := (500 - perSeat) + (500 - perSeat)
	assert.Equal(t, 900.0, total)
}
