package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/upload"
	"github.com/sudo-init-do/accounthub/internal/user"
)

// PATCH /profile
//
// Multipart form. Only fields that are present and non-empty are applied;
// everything else stays as it was. An optional "avatar" file part is
// validated and stored, and its public path saved on the user.
func (h *Handler) UpdateProfile(c echo.Context) error {
	u, ok := currentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var p user.Patch
	if v := c.FormValue("firstName"); v != "" {
		p.FirstName = &v
	}
	if v := c.FormValue("lastName"); v != "" {
		p.LastName = &v
	}
	if v := c.FormValue("email"); v != "" {
		p.Email = &v
	}
	if v := c.FormValue("number"); v != "" {
		p.Number = &v
	}
	if v := c.FormValue("birthday"); v != "" {
		birthday, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthday must be YYYY-MM-DD"})
		}
		p.Birthday = &birthday
	}

	if file, err := c.FormFile("avatar"); err == nil {
		path, saveErr := h.avatars.SaveAvatar(u.ID, file)
		if saveErr != nil {
			if errors.Is(saveErr, upload.ErrUnsupportedType) {
				return c.JSON(http.StatusUnsupportedMediaType, echo.Map{"error": saveErr.Error()})
			}
			c.Logger().Errorf("save avatar: %v", saveErr)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store avatar"})
		}
		p.Avatar = &path
	}

	updated, err := h.svc.UpdateProfile(c.Request().Context(), u.ID, p)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, user.ErrEmailTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
		default:
			c.Logger().Errorf("update profile: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "profile updated successfully",
		"user":    updated.Public(),
	})
}
