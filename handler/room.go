package handler

import (
	"errors"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetRooms(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Room{})

	var totalCount int64
	condition.Count(&totalCount)

	var rooms []model.Room
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Preload("Seats").Order("id ASC").Find(&rooms)

	response := &model.ResponseCustom{
		Rows:       rooms,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetRoomById(c *fiber.Ctx) error {
	roomId := c.Locals("inputId").(int)

	db := database.DB
	var room model.Room
	if err := db.Preload("Seats").First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func CreateRoom(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateRoom").(model.CreateRoomInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("parse data to locals fail"))
	}

	room := model.Room{
		Name:            input.Name,
		Location:        input.Location,
		Rows:            input.Rows,
		Columns:         input.Columns,
		SeatingCapacity: input.Rows * input.Columns,
		Seats:           helper.GenerateSeats(input.Rows, input.Columns),
	}

	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

// UpdateRoom renames, resizes or retypes seats. A resize regenerates the
// whole grid and is refused while active bookings reference the room.
func UpdateRoom(c *fiber.Ctx) error {
	roomId := c.Locals("roomId").(uint)
	input := c.Locals("inputEditRoom").(model.EditRoomInput)

	db := database.DB
	tx := db.Begin()

	var room model.Room
	if err := tx.Preload("Seats").First(&room, roomId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Location != nil {
		room.Location = *input.Location
	}

	rows := room.Rows
	columns := room.Columns
	if input.Rows != nil {
		rows = *input.Rows
	}
	if input.Columns != nil {
		columns = *input.Columns
	}
	resized := rows != room.Rows || columns != room.Columns

	if resized {
		var activeBookings int64
		if err := tx.Model(&model.Booking{}).
			Where("room_id = ? AND is_cancelled = ?", room.ID, false).
			Count(&activeBookings).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if activeBookings > 0 {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_HAS_BOOKINGS, errors.New("active bookings exist"))
		}

		// drop the old grid and regenerate
		if err := tx.Unscoped().Where("room_id = ?", room.ID).Delete(&model.Seat{}).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		room.Rows = rows
		room.Columns = columns
		room.SeatingCapacity = rows * columns
		room.Seats = helper.GenerateSeats(rows, columns)
	} else if len(input.Seats) > 0 {
		helper.ApplySeatPatches(room.Seats, input.Seats)
		for i := range room.Seats {
			if err := tx.Model(&model.Seat{}).
				Where("id = ?", room.Seats[i].ID).
				Update("type", room.Seats[i].Type).Error; err != nil {
				tx.Rollback()
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}
	}

	if err := tx.Save(&room).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, room)
}

func DeleteRoom(c *fiber.Ctx) error {
	roomId := c.Locals("inputId").(int)

	_, isAdmin := helper.GetInfoUserFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	var room model.Room
	if err := db.First(&room, roomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var activeBookings int64
	db.Model(&model.Booking{}).
		Where("room_id = ? AND is_cancelled = ?", room.ID, false).
		Count(&activeBookings)
	if activeBookings > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_HAS_BOOKINGS, errors.New("active bookings exist"))
	}

	var scheduledShowtimes int64
	db.Model(&model.Showtime{}).
		Where("room_id = ? AND status = ?", room.ID, constants.SHOWTIME_SCHEDULED).
		Count(&scheduledShowtimes)
	if scheduledShowtimes > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Room has scheduled showtimes", errors.New("showtimes exist"))
	}

	if err := db.Delete(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": room.ID})
}
