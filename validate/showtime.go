package validate

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateShowtime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD", err, "date")
		}
		if _, err := time.Parse("15:04", input.Time); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Time must be HH:MM", err, "time")
		}

		db := database.DB

		var movie model.Movie
		if err := db.First(&movie, input.MovieId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, nil, "movieId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var room model.Room
		if err := db.First(&room, input.RoomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ROOM_NOT_FOUND, nil, "roomId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// one room, one slot
		var count int64
		db.Model(&model.Showtime{}).
			Where("room_id = ? AND date = ? AND time = ?", input.RoomId, date, input.Time).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_SHOWTIME, errors.New("slot taken"))
		}

		c.Locals("inputCreateShowtime", input)
		c.Locals("showtimeDate", date)
		return c.Next()
	}
}

func EditShowtime(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid input %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		_, isAdmin := helper.GetInfoUserFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		if input.Date != nil {
			if _, err := time.Parse("2006-01-02", *input.Date); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD", err, "date")
			}
		}
		if input.Time != nil {
			if _, err := time.Parse("15:04", *input.Time); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Time must be HH:MM", err, "time")
			}
		}

		c.Locals("inputId", valueKey)
		c.Locals("inputEditShowtime", input)
		return c.Next()
	}
}
