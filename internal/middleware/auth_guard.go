package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/auth"
	"github.com/sudo-init-do/accounthub/internal/user"
)

// RequireAuth gates protected routes behind a bearer token. After the
// token checks out it re-resolves the user from the store, so a token for
// an account that no longer exists is rejected too. The resolved user is
// stored on the context under "user".
func RequireAuth(tokens *auth.Tokens, repo user.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing Authorization header"})
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) || len(header) == len(prefix) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid Authorization format"})
			}

			claims, err := tokens.Verify(header[len(prefix):])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}

			u, err := repo.GetByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user not found"})
			}

			c.Set("user", u)
			return next(c)
		}
	}
}
