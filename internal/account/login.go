package account

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string          `json:"message"`
	User    user.PublicView `json:"user"`
	Token   string          `json:"token"`
}

// POST /login
func (h *Handler) Login(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	u, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
		case errors.Is(err, user.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, ErrWrongPassword):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "incorrect password"})
		default:
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
		}
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "login successful",
		User:    u.Public(),
		Token:   token,
	})
}
