package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iamkarol/fitness-profile-service/internal/utils"
)

// accountIDKey is the context key under which the authenticated
// account id is stored. Handlers read it through AccountID().
const accountIDKey = "account_id"

// SessionAuth returns an Echo middleware that validates a Bearer
// session token and injects the token's subject into the request
// context. The provided secret must match the one used when issuing
// tokens. Validation is pure computation (signature + expiry); no
// store is consulted, so a request with a bad or expired token is
// rejected without touching the database.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			accountID, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(accountIDKey, accountID)
			return next(c)
		}
	}
}

// AccountID extracts the authenticated account id stored by
// SessionAuth. The second return value is false when the middleware
// did not run for this request.
func AccountID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(accountIDKey).(uint64)
	return id, ok
}
