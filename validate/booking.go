package validate

import (
	"errors"
	"fmt"

	"cinema_booking/constants"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
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

		// bank transfers need the bank named
		if input.PaymentMethod == constants.PAYMENT_BANK && input.BankName == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.BANK_NAME_REQUIRED, errors.New("bankName missing"), "bankName")
		}

		c.Locals("inputCreateBooking", input)
		return c.Next()
	}
}
