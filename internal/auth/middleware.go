package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// claimsKey is the echo context key the verified claims are stored under.
const claimsKey = "user"

// bearerPrefixLen is the length of "Bearer " including the trailing space.
// Exactly this many characters are discarded from the Authorization value,
// whatever they are: a client that omits the prefix silently loses the first
// seven characters of its token. Preserved compatibility quirk.
const bearerPrefixLen = 7

// RequireAuth rejects requests without a credential (400, distinct from the
// invalid-credential outcome so callers can tell "didn't try" from "tried and
// failed"), verifies the bearer token, and on success stores the claims in
// the request context before invoking the next handler. Routes that allow
// anonymous access simply never install it.
func RequireAuth(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"auth": "Failed. No Token"})
			}

			token := ""
			if len(header) > bearerPrefixLen {
				token = header[bearerPrefixLen:]
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				// surface the specific reason; expired vs tampered vs
				// malformed matter to callers even though the status is the same
				return c.JSON(http.StatusForbidden, echo.Map{
					"auth":    "Failed",
					"message": err.Error(),
				})
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin gates a route to admin identities. It composes after
// RequireAuth and assumes claims are already in the context.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok || !claims.IsAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{
					"auth":    "Failed",
					"message": "Action Forbidden",
				})
			}
			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims attached by RequireAuth.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsKey).(*Claims)
	return claims, ok
}
