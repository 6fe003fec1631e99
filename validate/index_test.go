package validate

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("DELETE", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(payload)
}

func getPath(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(payload)
}

func deleteApp(t *testing.T, reached *bool, got *model.ArrayId) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Delete("/things", Delete(), func(c *fiber.Ctx) error {
		*reached = true
		input, ok := c.Locals("deleteIds").(model.ArrayId)
		require.True(t, ok)
		*got = input
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestDeleteRejectsEmptyIdList(t *testing.T) {
	reached := false
	var got model.ArrayId
	app := deleteApp(t, &reached, &got)

	status, _ := deleteJSON(t, app, "/things", `{"ids": []}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, reached)

	status, _ = deleteJSON(t, app, "/things", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, reached)
}

func TestDeletePassesIdsToHandler(t *testing.T) {
	reached := false
	var got model.ArrayId
	app := deleteApp(t, &reached, &got)

	status, _ := deleteJSON(t, app, "/things", `{"ids": [3, 7]}`)
	assert.Equal(t, fiber.StatusOK, status)
	require.True(t, reached)
	assert.Equal(t, []uint{3, 7}, got.IDs)
}

func TestGetByIdRejectsNonNumericParam(t *testing.T) {
	reached := false
	app := fiber.New()
	app.Get("/things/:thingId", GetById("thingId"), func(c *fiber.Ctx) error {
		reached = true
		assert.Equal(t, 42, c.Locals("inputId").(int))
		return c.SendStatus(fiber.StatusOK)
	})

	status, _ := getPath(t, app, "/things/abc")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, reached)

	status, _ = getPath(t, app, "/things/42")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, reached)
}
