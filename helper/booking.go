package helper

import (
	"math"
	"strings"

	"cinema_booking/model"
)

// ResolvedSeat is a requested seat matched against the room's seat list.
type ResolvedSeat struct {
	SeatId     uint
	SeatNumber string
	Price      float64
}

// ResolveSelection matches requested seat ids against the room's seats.
// Requests for seats that do not exist in the room are silently dropped,
// mirroring how the seat map treats stale client state.
func ResolveSelection(roomSeats []model.Seat, requested []model.SeatSelection) []ResolvedSeat {
	byId := make(map[uint]model.Seat, len(roomSeats))
	for _, s := range roomSeats {
		byId[s.ID] = s
	}

	resolved := make([]ResolvedSeat, 0, len(requested))
	for _, sel := range requested {
		seat, ok := byId[sel.Id]
		if !ok {
			continue
		}
		resolved = append(resolved, ResolvedSeat{
			SeatId:     seat.ID,
			SeatNumber: seat.SeatNumber,
			Price:      sel.Price,
		})
	}
	return resolved
}

// FindConflicts returns the seat labels of every requested seat that already
// has an active booking for the showtime. The whole request fails when this
// is non-empty; all offenders are named at once.
func FindConflicts(active []model.Booking, selection []ResolvedSeat) []string {
	taken := make(map[uint]bool, len(active))
	for _, b := range active {
		if !b.IsCancelled {
			taken[b.SeatId] = true
		}
	}

	var conflicts []string
	for _, s := range selection {
		if taken[s.SeatId] {
			conflicts = append(conflicts, s.SeatNumber)
		}
	}
	return conflicts
}

// ConflictMessage formats the Conflict error naming every contested seat.
func ConflictMessage(seatNumbers []string) string {
	return "Already booked: " + strings.Join(seatNumbers, ", ")
}

// SplitDiscount divides a lump discount evenly across seats, rounded to two
// decimals per seat. The rounding remainder is unaccounted for; with cent
// precision it is below one cent per seat, which this domain accepts.
func SplitDiscount(discount float64, seatCount int) float64 {
	if discount <= 0 || seatCount <= 0 {
		return 0
	}
	return math.Round(discount/float64(seatCount)*100) / 100
}
