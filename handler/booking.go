package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bookingLockTimeout = 5 * time.Second

// CreateBooking reserves one or more seats for a showtime. One booking row
// is written per seat; the whole request commits or rolls back as a unit.
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("parse data to locals fail"))
	}

	// one writer per showtime in this process; the row locks below are
	// the authoritative guard across processes
	if !helper.LockShowtime(input.ShowtimeId, bookingLockTimeout) {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BOOKING_BUSY, errors.New("showtime lock timeout"))
	}
	defer helper.UnlockShowtime(input.ShowtimeId)

	ctx, cancel := context.WithTimeout(context.Background(), bookingLockTimeout)
	defer cancel()

	db := database.DB
	tx := db.WithContext(ctx).Begin()

	var showtime model.Showtime
	if err := tx.First(&showtime, input.ShowtimeId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	var room model.Room
	if err := tx.First(&room, input.RoomId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if showtime.RoomId != room.ID {
		tx.Rollback()
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Room does not match showtime", errors.New("room mismatch"), "roomId")
	}
	if showtime.Status == constants.SHOWTIME_EXPIRED {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, "Showtime already started", errors.New("showtime expired"))
	}

	// lock the room's seat rows for the duration of the transaction
	var seats []model.Seat
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ?", showtime.RoomId).
		Find(&seats).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	resolved := helper.ResolveSelection(seats, input.Seats)
	if len(resolved) == 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_VALID_SEATS, errors.New("no seats resolved"))
	}

	var activeBookings []model.Booking
	if err := tx.Where("showtime_id = ? AND is_cancelled = ?", input.ShowtimeId, false).
		Find(&activeBookings).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if conflicts := helper.FindConflicts(activeBookings, resolved); len(conflicts) > 0 {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, helper.ConflictMessage(conflicts), errors.New("seats taken"))
	}

	perSeatDiscount := helper.SplitDiscount(input.DiscountPrice, len(resolved))

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constants.PAYMENT_CASH
	}
	transactionId := input.TransactionId
	if transactionId == "" {
		transactionId = uuid.New().String()
	}

	now := time.Now()
	bookingIds := make([]uint, 0, len(resolved))
	publicCodes := make([]string, 0, len(resolved))
	var totalPrice float64

	for _, seat := range resolved {
		booking := model.Booking{
			PublicCode:        "BKG-" + uuid.New().String()[:8],
			ShowtimeId:        showtime.ID,
			RoomId:            showtime.RoomId,
			SeatId:            seat.SeatId,
			CustomerName:      input.CustomerName,
			CustomerPhone:     input.CustomerPhone,
			TicketPrice:       seat.Price,
			DiscountPrice:     perSeatDiscount,
			DiscountReference: input.DiscountReference,
			TotalPrice:        seat.Price - perSeatDiscount,
			PaymentMethod:     paymentMethod,
			BankName:          input.BankName,
			TransactionId:     transactionId,
			BookedAt:          now,
		}

		if err := tx.Create(&booking).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// denormalized occupancy mirror on the seat row
		if err := tx.Model(&model.Seat{}).
			Where("id = ?", seat.SeatId).
			Update("booking_id", booking.ID).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		bookingIds = append(bookingIds, booking.ID)
		publicCodes = append(publicCodes, booking.PublicCode)
		totalPrice += booking.TotalPrice
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seatIds := make([]uint, 0, len(resolved))
	for _, s := range resolved {
		seatIds = append(seatIds, s.SeatId)
	}
	PublishSeatChange(showtime.ID, "booked", seatIds)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"bookingIds":  bookingIds,
		"publicCodes": publicCodes,
		"totalPrice":  totalPrice,
	})
}

// CancelBooking soft-cancels one booking and frees its seat. The row stays
// in the ledger for reporting.
func CancelBooking(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)
	claim, _ := helper.GetInfoUserFromToken(c)

	db := database.DB
	tx := db.Begin()

	var booking model.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, bookingId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.IsCancelled {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ALREADY_CANCELLED, errors.New("already cancelled"))
	}

	now := time.Now()
	booking.IsCancelled = true
	booking.CancelledAt = &now
	booking.CancelledBy = claim.Name

	if err := tx.Save(&booking).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// free the mirror only if it still points at this booking
	if err := tx.Model(&model.Seat{}).
		Where("id = ? AND booking_id = ?", booking.SeatId, booking.ID).
		Update("booking_id", nil).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishSeatChange(booking.ShowtimeId, "cancelled", []uint{booking.SeatId})

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func GetBookings(c *fiber.Ctx) error {
	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Booking{})

	if filterInput.StartDate != "" {
		start, err := time.Parse("2006-01-02", filterInput.StartDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "startDate must be YYYY-MM-DD", err)
		}
		condition = condition.Where("booked_at >= ?", start)
	}
	if filterInput.EndDate != "" {
		end, err := time.Parse("2006-01-02", filterInput.EndDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endDate must be YYYY-MM-DD", err)
		}
		condition = condition.Where("booked_at < ?", end.Add(24*time.Hour))
	}
	if filterInput.ShowtimeId > 0 {
		condition = condition.Where("showtime_id = ?", filterInput.ShowtimeId)
	}
	if filterInput.RoomId > 0 {
		condition = condition.Where("room_id = ?", filterInput.RoomId)
	}
	if filterInput.CustomerName != "" {
		condition = condition.Where("LOWER(customer_name) LIKE ?", "%"+strings.ToLower(filterInput.CustomerName)+"%")
	}
	if filterInput.CustomerPhone != "" {
		condition = condition.Where("customer_phone LIKE ?", "%"+filterInput.CustomerPhone+"%")
	}
	if filterInput.PaymentMethod != "" {
		condition = condition.Where("payment_method = ?", filterInput.PaymentMethod)
	}
	switch filterInput.Status {
	case "active":
		condition = condition.Where("is_cancelled = ?", false)
	case "cancelled":
		condition = condition.Where("is_cancelled = ?", true)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Preload("Showtime.Movie").Preload("Room").Preload("Seat").
		Order("id DESC").Find(&bookings)

	response := &model.ResponseCustom{
		Rows:       summarizeBookings(bookings),
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// summarizeBookings flattens preloaded relations into the list row shape:
// seat label plus trimmed showtime/movie/room summaries.
func summarizeBookings(bookings []model.Booking) []model.BookingListRow {
	rows := make([]model.BookingListRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, model.BookingListRow{
			Booking:    b,
			SeatNumber: b.Seat.SeatNumber,
			Showtime: model.ShowtimeSummary{
				Id:          b.ShowtimeId,
				Date:        b.Showtime.Date,
				Time:        b.Showtime.Time,
				MovieTitle:  b.Showtime.Movie.Title,
				MoviePoster: b.Showtime.Movie.Poster,
			},
			Room: model.RoomSummary{
				Id:              b.RoomId,
				Name:            b.Room.Name,
				SeatingCapacity: b.Room.SeatingCapacity,
			},
		})
	}
	return rows
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	db := database.DB
	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var seat model.Seat
	db.First(&seat, booking.SeatId)
	var showtime model.Showtime
	db.Preload("Movie").Preload("Room").First(&showtime, booking.ShowtimeId)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking":  booking,
		"seat":     seat,
		"showtime": showtime,
	})
}

// GetBookingQRCode renders the booking's public code as a PNG.
func GetBookingQRCode(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	db := database.DB
	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	png, err := utils.GenerateQRCode(booking.PublicCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
