package validate

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema_booking/constants"
	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingApp(t *testing.T, reached *bool) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/bookings", CreateBooking(), func(c *fiber.Ctx) error {
		*reached = true
		_, ok := c.Locals("inputCreateBooking").(model.CreateBookingInput)
		require.True(t, ok)
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(payload)
}

func TestCreateBookingBankRequiresBankName(t *testing.T) {
	reached := false
	app := bookingApp(t, &reached)

	status, body := postJSON(t, app, "/bookings", `{
		"showtimeId": 1,
		"roomId": 1,
		"seats": [{"id": 1, "price": 400}],
		"customerName": "Ada",
		"customerPhone": "0123456789",
		"paymentMethod": "Bank"
	}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, constants.BANK_NAME_REQUIRED)
	assert.False(t, reached, "request must be rejected before the handler runs")
}

func TestCreateBookingBankWithBankNamePasses(t *testing.T) {
	reached := false
	app := bookingApp(t, &reached)

	status, _ := postJSON(t, app, "/bookings", `{
		"showtimeId": 1,
		"roomId": 1,
		"seats": [{"id": 1, "price": 400}],
		"customerName": "Ada",
		"customerPhone": "0123456789",
		"paymentMethod": "Bank",
		"bankName": "KBank"
	}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, reached)
}

func TestCreateBookingCashNeedsNoBankName(t *testing.T) {
	reached := false
	app := bookingApp(t, &reached)

	status, _ := postJSON(t, app, "/bookings", `{
		"showtimeId": 1,
		"roomId": 1,
		"seats": [{"id": 1, "price": 400}],
		"customerName": "Ada",
		"customerPhone": "0123456789",
		"paymentMethod": "Cash"
	}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, reached)
}

func TestCreateBookingRejectsEmptySeats(t *testing.T) {
	reached := false
	app := bookingApp(t, &reached)

	status, _ := postJSON(t, app, "/bookings", `{
		"showtimeId": 1,
		"roomId": 1,
		"seats": [],
		"customerName": "Ada",
		"customerPhone": "0123456789"
	}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, reached)
}
