package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sudo-init-do/accounthub/internal/user"
)

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Number    string `json:"number"`
	Birthday  string `json:"birthday"`
}

// POST /register
func (h *Handler) Register(c echo.Context) error {
	req := new(RegisterRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	in := RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Number:    req.Number,
	}
	if req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "birthday must be YYYY-MM-DD"})
		}
		in.Birthday = birthday
	}

	if err := h.svc.Register(c.Request().Context(), in); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "first name, last name, email and password are required"})
		case errors.Is(err, user.ErrEmailTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already in use"})
		default:
			c.Logger().Errorf("register: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "account created successfully"})
}
