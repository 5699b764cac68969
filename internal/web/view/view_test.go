package view

import (
	"errors"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/session"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/inventory", "/inventory"))
	assert.True(t, IsActive("/inventory/abc/edit", "/inventory"))
	assert.False(t, IsActive("/inventory-report", "/inventory"))
	assert.True(t, IsActive("/tasks/my-tasks", "/tasks"))
}

func TestVisibleNavByRole(t *testing.T) {
	tests := []struct {
		role string
		want []string
	}{
		{session.RolePrep, []string{"/dashboard", "/tasks/my-tasks", "/products", "/inventory"}},
		{session.RoleSupervisor, []string{"/dashboard", "/tasks/my-tasks", "/tasks", "/products", "/inventory", "/reports"}},
		{session.RoleManager, []string{"/dashboard", "/tasks/my-tasks", "/tasks", "/products", "/categories", "/inventory", "/reports", "/users"}},
		{session.RoleAdmin, []string{"/dashboard", "/tasks/my-tasks", "/tasks", "/products", "/categories", "/inventory", "/reports", "/users"}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			links := VisibleNav(&session.Principal{Role: tt.role}, "/products/1")
			var hrefs []string
			for _, l := range links {
				hrefs = append(hrefs, l.Href)
				assert.Equal(t, l.Href == "/products", l.Active)
			}
			assert.Equal(t, tt.want, hrefs)
		})
	}

	assert.Nil(t, VisibleNav(nil, "/dashboard"))
}

func TestRolesFor(t *testing.T) {
	assert.Equal(t, []string{session.RoleManager}, RolesFor("/users"))
	assert.Len(t, RolesFor("/unknown"), 3)
}

func TestFormParsing(t *testing.T) {
	app := fiber.New()
	var (
		name     string
		qty      float64
		cost     *float64
		rows     []map[string]string
		active   bool
		formErrs validation.Errors
	)
	app.Post("/", func(c *fiber.Ctx) error {
		f := NewForm(c)
		name = f.String("name")
		qty = f.Float("currentQuantity")
		cost = f.OptionalFloat("cost")
		f.Float("maxThreshold")
		active = f.Bool("isActive")
		rows = f.Rows("ingredients")
		formErrs = f.Errors
		return c.SendStatus(fiber.StatusNoContent)
	})

	body := url.Values{
		"name":                        {"  Rice  "},
		"currentQuantity":             {"12.5"},
		"cost":                        {""},
		"maxThreshold":                {"abc"},
		"isActive":                    {"on"},
		"ingredients[1].ingredientId": {"b"},
		"ingredients[0].ingredientId": {"a"},
		"ingredients[0].quantity":     {"2"},
	}
	req := httptest.NewRequest("POST", "/", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "Rice", name)
	assert.Equal(t, 12.5, qty)
	assert.Nil(t, cost)
	assert.True(t, active)
	assert.Equal(t, "Expected a number", formErrs.Get("maxThreshold"))
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0]["ingredientId"])
	assert.Equal(t, "2", rows[0]["quantity"])
	assert.Equal(t, "b", rows[1]["ingredientId"])
}

func TestFloatRejectsNonFinite(t *testing.T) {
	app := fiber.New()
	var (
		values   []float64
		formErrs validation.Errors
	)
	app.Post("/", func(c *fiber.Ctx) error {
		f := NewForm(c)
		values = []float64{f.Float("max"), f.Float("quantity"), f.ParseFloat("usage[0].quantityUsed", "-Inf"), f.Float("ok")}
		formErrs = f.Errors
		return c.SendStatus(fiber.StatusNoContent)
	})

	body := url.Values{"max": {"Inf"}, "quantity": {"NaN"}, "ok": {"1e3"}}
	req := httptest.NewRequest("POST", "/", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0, 1000}, values)
	assert.Equal(t, "Expected a number", formErrs.Get("max"))
	assert.Equal(t, "Expected a number", formErrs.Get("quantity"))
	assert.Equal(t, "Expected a number", formErrs.Get("usage[0].quantityUsed"))
	assert.Empty(t, formErrs.Get("ok"))
}

func TestFailure(t *testing.T) {
	msg, fields, fatal := Failure(validation.Errors{"name": "bad"}, "fallback")
	assert.Empty(t, msg)
	assert.Equal(t, "bad", fields.Get("name"))
	assert.NoError(t, fatal)

	_, _, fatal = Failure(&apiclient.APIError{StatusCode: 401, Message: "expired"}, "fallback")
	assert.ErrorIs(t, fatal, apiclient.ErrUnauthorized)

	msg, _, fatal = Failure(&apiclient.APIError{StatusCode: 409, Message: "Item already exists"}, "fallback")
	assert.Equal(t, "Item already exists", msg)
	assert.NoError(t, fatal)

	msg, _, _ = Failure(errors.New("dial tcp: refused"), "Something went wrong")
	assert.Equal(t, "Something went wrong", msg)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5", FormatNumber(5))
	assert.Equal(t, "0.25", FormatNumber(0.25))
}
