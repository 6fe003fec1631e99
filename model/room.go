package model

type Seat struct {
	DTO
	RoomId     uint   `gorm:"index" json:"roomId"`
	SeatNumber string `gorm:"not null" json:"seatNumber"` // e.g. "C7"
	Row        int    `gorm:"not null" json:"row"`        // 1-based
	Column     int    `gorm:"not null" json:"column"`     // 1-based
	Type       string `gorm:"not null;default:'Normal'" json:"type"`
	// occupancy mirror: non-nil iff an active booking holds this seat
	BookingId *uint `gorm:"index" json:"bookingId"`
}

type Room struct {
	DTO
	Name            string `gorm:"not null" validate:"required" json:"name"`
	Location        string `gorm:"not null" validate:"required" json:"location"`
	Rows            int    `gorm:"not null" json:"rows"`
	Columns         int    `gorm:"not null" json:"columns"`
	SeatingCapacity int    `json:"seatingCapacity"`
	Seats           []Seat `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE" json:"seats"`
}

type CreateRoomInput struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
	Rows     int    `json:"rows" validate:"required,min=1"`
	Columns  int    `json:"columns" validate:"required,min=1"`
}

// SeatPatch updates a seat's type by seat number; unknown numbers are ignored.
type SeatPatch struct {
	SeatNumber string `json:"seatNumber" validate:"required"`
	Type       string `json:"type"`
}

// EditRoomInput carries either a resize (Rows+Columns) or a seat retype
// (Seats), plus optional name/location changes.
type EditRoomInput struct {
	Name     *string     `json:"name"`
	Location *string     `json:"location"`
	Rows     *int        `json:"rows"`
	Columns  *int        `json:"columns"`
	Seats    []SeatPatch `json:"seats"`
}
