package account

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/user"
)

// GET /me
func (h *Handler) Me(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	// Re-read so the response reflects the latest state, not the copy the
	// middleware resolved.
	fresh, err := h.svc.GetSelf(c.Request().Context(), u.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Errorf("me: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	return c.JSON(http.StatusOK, fresh.Public())
}
