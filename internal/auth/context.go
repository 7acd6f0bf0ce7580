package auth

import "github.com/labstack/echo/v4"

// identityKey is where echo-jwt stores the parsed token result.
const identityKey = "user"

// FromContext returns the validated identity for the request, or nil when the
// request was not authenticated.
func FromContext(c echo.Context) *Identity {
	id, _ := c.Get(identityKey).(*Identity)
	return id
}

// IntoContext stores an identity on the request. Used by tests and by the
// route protection middleware.
func IntoContext(c echo.Context, id *Identity) {
	c.Set(identityKey, id)
}
