package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GatePolicy decides whether a request may pass the dashboard gate.
type GatePolicy func(c echo.Context, identity Identity) bool

// AllowAll admits every request. It is the current product default until a
// dashboard authorization policy is decided.
func AllowAll(echo.Context, Identity) bool {
	return true
}

// RequireAuthenticated admits only callers with a resolved identity.
func RequireAuthenticated(_ echo.Context, identity Identity) bool {
	return identity.Authenticated
}

// Gate is the pre-route authorization hook for a path prefix. The policy is
// pluggable; rejected requests get a 401 without reaching the handler.
func Gate(resolver *AuthResolver, policy GatePolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log.Printf("Gate: %s %s", c.Request().Method, c.Request().URL.Path)

			identity := resolver.ResolveCaller(c)
			if !policy(c, identity) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			return next(c)
		}
	}
}
