package model

import "time"

type Showtime struct {
	DTO
	MovieId     uint      `gorm:"index;not null" json:"movieId"`
	RoomId      uint      `gorm:"index;not null" json:"roomId"`
	Date        time.Time `gorm:"not null" json:"date"`
	Time        string    `gorm:"size:5;not null" json:"time"` // "19:30"
	PriceVIP    float64   `gorm:"not null;default:700" json:"priceVIP"`
	PriceNormal float64   `gorm:"not null;default:400" json:"priceNormal"`
	Status      string    `gorm:"not null;default:'scheduled'" json:"status"`
	Movie       Movie     `gorm:"foreignKey:MovieId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"movie"`
	Room        Room      `gorm:"foreignKey:RoomId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"room"`
}

type CreateShowtimeInput struct {
	MovieId     uint    `json:"movieId" validate:"required,gt=0"`
	RoomId      uint    `json:"roomId" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"` // YYYY-MM-DD
	Time        string  `json:"time" validate:"required"` // HH:MM
	PriceVIP    float64 `json:"priceVIP" validate:"omitempty,gt=0"`
	PriceNormal float64 `json:"priceNormal" validate:"omitempty,gt=0"`
}

type FilterShowtimeInput struct {
	Pagination
	MovieId uint   `query:"movieId"`
	RoomId  uint   `query:"roomId"`
	Date    string `query:"date"` // YYYY-MM-DD
	Status  string `query:"status"`
}

type EditShowtimeInput struct {
	MovieId     *uint    `json:"movieId"`
	RoomId      *uint    `json:"roomId"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	PriceVIP    *float64 `json:"priceVIP"`
	PriceNormal *float64 `json:"priceNormal"`
}
