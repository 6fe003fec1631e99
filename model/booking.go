package model

import "time"

type Booking struct {
	DTO
	PublicCode string `gorm:"size:16;uniqueIndex" json:"publicCode"`
	ShowtimeId uint   `gorm:"index;not null" json:"showtimeId"`
	RoomId     uint   `gorm:"index;not null" json:"roomId"`
	SeatId     uint   `gorm:"index;not null" json:"seatId"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`

	TicketPrice       float64 `gorm:"not null" json:"ticketPrice"`
	DiscountPrice     float64 `gorm:"default:0" json:"discountPrice"`
	DiscountReference string  `json:"discountReference"`
	TotalPrice        float64 `gorm:"not null" json:"totalPrice"`

	PaymentMethod string `gorm:"not null;default:'Cash'" json:"paymentMethod"`
	BankName      string `json:"bankName"`
	TransactionId string `json:"transactionId"`

	BookedAt    time.Time  `json:"bookedAt"`
	IsCancelled bool       `gorm:"default:false;index" json:"isCancelled"`
	CancelledAt *time.Time `json:"cancelledAt"`
	CancelledBy string     `json:"cancelledBy"`

	Showtime Showtime `gorm:"foreignKey:ShowtimeId" json:"-"`
	Room     Room     `gorm:"foreignKey:RoomId" json:"-"`
	Seat     Seat     `gorm:"foreignKey:SeatId" json:"-"`
}

// ShowtimeSummary is the trimmed showtime shape embedded in booking lists.
type ShowtimeSummary struct {
	Id          uint      `json:"id"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	MovieTitle  string    `json:"movieTitle"`
	MoviePoster string    `json:"moviePoster"`
}

type RoomSummary struct {
	Id              uint   `json:"id"`
	Name            string `json:"name"`
	SeatingCapacity int    `json:"seatingCapacity"`
}

// BookingListRow is one booking with its joined showtime/movie/room/seat
// summaries, as the admin list renders it.
type BookingListRow struct {
	Booking
	SeatNumber string          `json:"seatNumber"`
	Showtime   ShowtimeSummary `json:"showtime"`
	Room       RoomSummary     `json:"room"`
}

// SeatSelection is one requested seat with the price the caller agreed to.
type SeatSelection struct {
	Id    uint    `json:"id" validate:"required,gt=0"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type CreateBookingInput struct {
	ShowtimeId        uint            `json:"showtimeId" validate:"required,gt=0"`
	RoomId            uint            `json:"roomId" validate:"required,gt=0"`
	Seats             []SeatSelection `json:"seats" validate:"required,min=1,dive"`
	CustomerName      string          `json:"customerName" validate:"required"`
	CustomerPhone     string          `json:"customerPhone" validate:"required"`
	DiscountPrice     float64         `json:"discountPrice" validate:"omitempty,gte=0"`
	DiscountReference string          `json:"discountReference"`
	PaymentMethod     string          `json:"paymentMethod" validate:"omitempty,oneof=Cash MobileWallet Bank"`
	BankName          string          `json:"bankName"`
	TransactionId     string          `json:"transactionId"`
}

type FilterBookingInput struct {
	Pagination
	StartDate     string `query:"startDate"`
	EndDate       string `query:"endDate"`
	ShowtimeId    uint   `query:"showtimeId"`
	RoomId        uint   `query:"roomId"`
	CustomerName  string `query:"customerName"`
	CustomerPhone string `query:"customerPhone"`
	PaymentMethod string `query:"paymentMethod"`
	Status        string `query:"status"` // active | cancelled
}
