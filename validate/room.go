package validate

import (
	"errors"
	"fmt"
	"strconv"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateRoom() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateRoomInput
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

		// room names are unique
		var existing model.Room
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Room name already exists", fmt.Errorf("name already exists"), "name")
		}

		c.Locals("inputCreateRoom", input)
		return c.Next()
	}
}

func EditRoom(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditRoomInput
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

		db := database.DB

		// check room exists
		var room model.Room
		if err := db.First(&room, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROOM_NOT_FOUND, nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// seat type patches must name valid types
		for _, patch := range input.Seats {
			if patch.Type == "" {
				continue
			}
			valid := false
			for _, t := range constants.SeatTypes() {
				if patch.Type == t {
					valid = true
					break
				}
			}
			if !valid {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest,
					fmt.Sprintf("Invalid seat type %q for seat %s", patch.Type, patch.SeatNumber), nil, "seats")
			}
		}

		// resizing below 1 row/column is never valid
		if input.Rows != nil && *input.Rows < 1 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Rows must be at least 1", nil, "rows")
		}
		if input.Columns != nil && *input.Columns < 1 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Columns must be at least 1", nil, "columns")
		}

		c.Locals("roomId", uint(valueKey))
		c.Locals("inputEditRoom", input)
		return c.Next()
	}
}
