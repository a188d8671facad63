package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hitenSisghSoft/soundbox/internal/auth"
	"github.com/hitenSisghSoft/soundbox/internal/errors"
	"github.com/hitenSisghSoft/soundbox/internal/role"
)

// RequireRoles gates a route group to the given roles. It runs after the JWT
// middleware, which stores *auth.Claims under the "user" key.
func RequireRoles(roles ...role.Role) echo.MiddlewareFunc {
	allowed := make(map[role.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}

			r, known := role.Parse(claims.Role)
			if !known {
				// An unknown role claim never inherits admin access; the
				// admin fallback is a navigation concern only.
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: errors.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			if _, ok := allowed[r]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: errors.ErrForbidden.Error(),
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}
