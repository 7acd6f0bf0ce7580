package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"datavision/internal/auth"
	"datavision/internal/errors"
)

// AdminOnly rejects callers whose token does not carry the Admin role.
// Distinct from authentication failure: the token is valid, the role is not.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := auth.FromContext(c)
		if identity == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		}
		if !identity.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: errors.ErrForbidden.Error(),
				Code:  "FORBIDDEN",
			})
		}
		return next(c)
	}
}
