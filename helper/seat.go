package helper

import (
	"fmt"
	"strings"

	"cinema_booking/constants"
	"cinema_booking/model"
)

// RowLetter converts a 0-based row index into a spreadsheet-style label:
// A..Z, AA, AB, ...
func RowLetter(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}

// GenerateSeats builds the row-major seat grid for a room. Seat numbers are
// the row letter plus the 1-based column (A1, A2, ... B1, ...); every seat
// starts as Normal with no booking reference.
func GenerateSeats(rows, columns int) []model.Seat {
	seats := make([]model.Seat, 0, rows*columns)
	for r := 0; r < rows; r++ {
		for c := 1; c <= columns; c++ {
			seats = append(seats, model.Seat{
				SeatNumber: fmt.Sprintf("%s%d", RowLetter(r), c),
				Row:        r + 1,
				Column:     c,
				Type:       constants.SEAT_NORMAL,
				BookingId:  nil,
			})
		}
	}
	return seats
}

// NormalizeSeatType maps blank input to Normal and leaves known types alone.
// Unknown values are returned as-is; the validator rejects them upstream.
func NormalizeSeatType(t string) string {
	if strings.TrimSpace(t) == "" {
		return constants.SEAT_NORMAL
	}
	return t
}

// ApplySeatPatches updates seat types in place, matching by seat number.
// Identity and booking references are preserved; patches for seat numbers
// not present in the room are ignored. Returns how many seats changed.
func ApplySeatPatches(seats []model.Seat, patches []model.SeatPatch) int {
	byNumber := make(map[string]int, len(seats))
	for i, s := range seats {
		byNumber[s.SeatNumber] = i
	}

	changed := 0
	for _, p := range patches {
		i, ok := byNumber[p.SeatNumber]
		if !ok {
			continue
		}
		newType := NormalizeSeatType(p.Type)
		if seats[i].Type != newType {
			seats[i].Type = newType
			changed++
		}
	}
	return changed
}
