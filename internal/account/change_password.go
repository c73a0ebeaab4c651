package account

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/user"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// PATCH /password
func (h *Handler) ChangePassword(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	req := new(ChangePasswordRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	err := h.svc.ChangePassword(c.Request().Context(), u.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "current and new password are required"})
		case errors.Is(err, user.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, ErrWrongPassword):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password is incorrect"})
		default:
			c.Logger().Errorf("change password: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update password"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "password updated successfully"})
}
