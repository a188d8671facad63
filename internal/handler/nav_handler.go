package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hitenSisghSoft/soundbox/internal/auth"
	"github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/role"
)

// NavHandler serves the role-derived navigation menu.
type NavHandler struct{}

// NewNavHandler creates a new navigation handler.
func NewNavHandler() *NavHandler {
	return &NavHandler{}
}

// NavResponse pairs the caller's role with its menu.
type NavResponse struct {
	Role  role.Role       `json:"role"`
	Menu  []role.NavEntry `json:"menu"`
	Route string          `json:"route_prefix"`
}

// Menu godoc
// @Summary Navigation menu for the caller's role
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /navigation [get]
func (h *NavHandler) Menu(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}

	r, _ := role.Parse(claims.Role)
	return c.JSON(http.StatusOK, Response{
		Message: "navigation fetched",
		Data: NavResponse{
			Role:  r,
			Menu:  role.MenuFor(r),
			Route: role.RoutePrefix(r),
		},
	})
}
