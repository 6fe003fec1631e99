package handler

import (
	"errors"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetShowtimes(c *fiber.Ctx) error {
	filterInput := new(model.FilterShowtimeInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Showtime{})

	if filterInput.MovieId > 0 {
		condition = condition.Where("movie_id = ?", filterInput.MovieId)
	}
	if filterInput.RoomId > 0 {
		condition = condition.Where("room_id = ?", filterInput.RoomId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.Date != "" {
		date, err := time.Parse("2006-01-02", filterInput.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD", err)
		}
		condition = condition.Where("date = ?", date)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var showtimes []model.Showtime
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Preload("Movie").Preload("Room").
		Order("date ASC, time ASC").Find(&showtimes)

	response := &model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetShowtimeById(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	db := database.DB
	var showtime model.Showtime
	if err := db.Preload("Movie").Preload("Room").First(&showtime, showtimeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func CreateShowtime(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateShowtime").(model.CreateShowtimeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("parse data to locals fail"))
	}
	date := c.Locals("showtimeDate").(time.Time)

	showtime := model.Showtime{
		MovieId: input.MovieId,
		RoomId:  input.RoomId,
		Date:    date,
		Time:    input.Time,
		Status:  constants.SHOWTIME_SCHEDULED,
	}
	if input.PriceVIP > 0 {
		showtime.PriceVIP = input.PriceVIP
	}
	if input.PriceNormal > 0 {
		showtime.PriceNormal = input.PriceNormal
	}

	db := database.DB
	if err := db.Create(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Movie").Preload("Room").First(&showtime, showtime.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, showtime)
}

func UpdateShowtime(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)
	input := c.Locals("inputEditShowtime").(model.EditShowtimeInput)

	db := database.DB
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// moving a showtime with active bookings would orphan tickets
	var activeBookings int64
	db.Model(&model.Booking{}).
		Where("showtime_id = ? AND is_cancelled = ?", showtime.ID, false).
		Count(&activeBookings)
	slotChanged := input.Date != nil || input.Time != nil || input.RoomId != nil
	if slotChanged && activeBookings > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Showtime has active bookings", errors.New("active bookings exist"))
	}

	if input.MovieId != nil {
		var movie model.Movie
		if err := db.First(&movie, *input.MovieId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, nil, "movieId")
		}
		showtime.MovieId = *input.MovieId
	}
	if input.RoomId != nil {
		var room model.Room
		if err := db.First(&room, *input.RoomId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, nil, "roomId")
		}
		showtime.RoomId = *input.RoomId
	}
	if input.Date != nil {
		date, _ := time.Parse("2006-01-02", *input.Date)
		showtime.Date = date
	}
	if input.Time != nil {
		showtime.Time = *input.Time
	}
	if input.PriceVIP != nil {
		showtime.PriceVIP = *input.PriceVIP
	}
	if input.PriceNormal != nil {
		showtime.PriceNormal = *input.PriceNormal
	}

	if slotChanged {
		var count int64
		db.Model(&model.Showtime{}).
			Where("room_id = ? AND date = ? AND time = ? AND id != ?", showtime.RoomId, showtime.Date, showtime.Time, showtime.ID).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_SHOWTIME, errors.New("slot taken"))
		}
	}

	if err := db.Save(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	db.Preload("Movie").Preload("Room").First(&showtime, showtime.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func DeleteShowtime(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	db := database.DB
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var activeBookings int64
	db.Model(&model.Booking{}).
		Where("showtime_id = ? AND is_cancelled = ?", showtime.ID, false).
		Count(&activeBookings)
	if activeBookings > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Showtime has active bookings", errors.New("active bookings exist"))
	}

	if err := db.Delete(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": showtime.ID})
}
