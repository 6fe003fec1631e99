package constants

const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

const (
	SEAT_NORMAL   = "Normal"
	SEAT_VIP      = "VIP"
	SEAT_DISABLED = "Disabled"
)

const (
	PAYMENT_CASH   = "Cash"
	PAYMENT_WALLET = "MobileWallet"
	PAYMENT_BANK   = "Bank"
)

const (
	SHOWTIME_SCHEDULED = "scheduled"
	SHOWTIME_EXPIRED   = "expired"
)

// response messages
const (
	NOT_ADMIN                = "Admin permission required"
	MISSING_LOGIN_INPUT      = "Email and password are required"
	INVALID_CREDENTIALS      = "Invalid email or password"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"

	MOVIE_NOT_FOUND    = "Movie not found"
	ROOM_NOT_FOUND     = "Room not found"
	SHOWTIME_NOT_FOUND = "Showtime not found"
	BOOKING_NOT_FOUND  = "Booking not found"
	STUDENT_NOT_FOUND  = "Student not found"
	COURSE_NOT_FOUND   = "Course not found"

	DUPLICATE_SHOWTIME = "Showtime already exists for this movie, room, date and time"
	ALREADY_CANCELLED  = "Booking already cancelled"
	NO_VALID_SEATS     = "No valid seats selected"
	BANK_NAME_REQUIRED = "Bank name is required when payment method is Bank"
	ROOM_HAS_BOOKINGS  = "Room has active bookings; cancel them before resizing"
	BOOKING_BUSY       = "Showtime is busy, please retry"
)

func PaymentMethods() []string {
	return []string{PAYMENT_CASH, PAYMENT_WALLET, PAYMENT_BANK}
}

func SeatTypes() []string {
	return []string{SEAT_NORMAL, SEAT_VIP, SEAT_DISABLED}
}
